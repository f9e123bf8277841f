package engine

// seedWord is one approved vocabulary word of the sample workspace.
type seedWord struct {
	Standard string
	Abbr     string
	English  string
	Category string // 분류어일 때만 도메인분류명
}

var seedWords = []seedWord{
	// 주제어
	{"고객", "CUST", "Customer", ""},
	{"주문", "ORD", "Order", ""},
	{"상품", "ITEM", "Item", ""},
	{"사원", "EMP", "Employee", ""},
	{"부서", "DEPT", "Department", ""},
	{"가입", "JOIN", "Join", ""},
	{"판매", "SALE", "Sale", ""},
	{"재고", "STK", "Stock", ""},
	{"입사", "HIRE", "Hire", ""},
	{"재직", "SRV", "Service", ""},

	// 분류어
	{"번호", "NO", "Number", "번호"},
	{"명", "NM", "Name", "명"},
	{"일자", "DT", "Date", "일자"},
	{"주소", "ADDR", "Address", "주소"},
	{"금액", "AMT", "Amount", "금액"},
	{"코드", "CD", "Code", "코드"},
	{"수량", "QTY", "Quantity", "수량"},
	{"여부", "YN", "Yes or No", "여부"},
}

type seedDomain struct {
	Category string
	Logical  string
	Physical string
	Length   string
	Decimals string
}

var seedDomains = []seedDomain{
	{"번호", "문자", "VARCHAR", "20", ""},
	{"명", "문자", "VARCHAR", "100", ""},
	{"일자", "날짜", "DATE", "", ""},
	{"주소", "문자", "VARCHAR", "200", ""},
	{"금액", "숫자", "NUMBER", "15", "2"},
	{"코드", "문자", "VARCHAR", "10", ""},
	{"수량", "숫자", "NUMBER", "10", ""},
	{"여부", "문자", "CHAR", "1", ""},
}

// seedSubject is one entity with its attributes, each spelled as vocabulary
// standard names. The last word of an attribute is its class word.
type seedSubject struct {
	Entity     string
	Attributes [][]string
}

var seedSubjects = []seedSubject{
	{"고객", [][]string{{"고객", "번호"}, {"고객", "명"}, {"가입", "일자"}, {"주소"}}},
	{"주문", [][]string{{"주문", "번호"}, {"주문", "일자"}, {"주문", "금액"}, {"고객", "번호"}}},
	{"상품", [][]string{{"상품", "코드"}, {"상품", "명"}, {"판매", "금액"}, {"재고", "수량"}}},
	{"사원", [][]string{{"사원", "번호"}, {"사원", "명"}, {"부서", "코드"}, {"입사", "일자"}, {"재직", "여부"}}},
}

var Cities = []string{"서울", "부산", "대구", "인천", "광주", "대전", "울산", "수원", "성남", "고양", "용인", "부천", "안산", "청주", "전주", "천안", "남양주", "화성", "안양", "김해"}
