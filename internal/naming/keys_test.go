package naming_test

import (
	"strings"
	"testing"

	"db-standard/internal/naming"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		opts naming.KeyOptions
		want string
	}{
		{"", naming.KeyOptions{}, ""},
		{"   ", naming.KeyOptions{}, ""},
		{"  Customer ", naming.KeyOptions{}, "customer"},
		{"고객", naming.KeyOptions{}, "고객"},
		{"-", naming.KeyOptions{}, "-"},
		{"-", naming.DesignKey, ""},
		{" - ", naming.DesignKey, ""},
		{"--", naming.DesignKey, "--"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, naming.NormalizeKey(c.in, c.opts), "input %q", c.in)
	}
}

func TestNormalizeKey_RandomInputs(t *testing.T) {
	f := gofakeit.New(7)
	for i := 0; i < 200; i++ {
		raw := f.RandomString([]string{" ", "\t", ""}) + f.Word() + strings.ToUpper(f.Letter()) + f.RandomString([]string{" ", ""})
		got := naming.NormalizeKey(raw, naming.DesignKey)
		assert.Equal(t, strings.ToLower(got), got)
		assert.Equal(t, strings.TrimSpace(got), got)
		// 정규화는 멱등이어야 한다
		assert.Equal(t, got, naming.NormalizeKey(got, naming.DesignKey))
	}
}

func TestBuildCompositeKey(t *testing.T) {
	assert.Equal(t, "hr|사원", naming.BuildCompositeKey([]string{" HR ", "사원"}, naming.DesignKey))
	assert.Equal(t, "", naming.BuildCompositeKey([]string{"HR", ""}, naming.DesignKey))
	assert.Equal(t, "", naming.BuildCompositeKey([]string{"-", "사원"}, naming.DesignKey))
	assert.Equal(t, "", naming.BuildCompositeKey(nil, naming.DesignKey))
	assert.Equal(t,
		naming.BuildCompositeKey([]string{"hr", "EMP"}, naming.DesignKey),
		naming.BuildCompositeKey([]string{"  HR", "emp  "}, naming.DesignKey),
	)
}

func TestSplitUnderscoreParts(t *testing.T) {
	assert.Equal(t, []string{"고객", "번호"}, naming.SplitUnderscoreParts("고객_번호"))
	assert.Equal(t, []string{"cust", "no"}, naming.SplitUnderscoreParts("_CUST__ NO _"))
	assert.Empty(t, naming.SplitUnderscoreParts("___"))
}
