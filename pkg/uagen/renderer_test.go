package uagen

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2013, time.March, 15, 12, 0, 0, 0, time.UTC)

func testDice(seed int64) *dice {
	return &dice{rnd: rand.New(rand.NewSource(seed)), now: testNow}
}

const (
	reNT    = `Windows NT [56]\.[01]`
	reMac   = `Mac OS X 10_[5-7]_\d`
	reExtra = `(|; \.NET CLR 1\.1\.432[0-5]|; WOW64)`
	reGecko = `Gecko/(\d{8}) Firefox/([5-7]\.0|[5-7]\.0\.1|3\.6\.([1-9]|1\d|20)|3\.8)$`
	reSaf   = `(53[1-5]\.([1-9]|[1-4]\d|50)\.[1-7])`
	reVer   = `([45]\.[01]|[45]\.0\.[1-5])`
	reChr   = `AppleWebKit/(53[1-6]\.[0-2]) \(KHTML, like Gecko\) Chrome/1[3-5]\.0\.8\d\d\.0 Safari/(53[1-6]\.[0-2])$`
	rePrst  = `Presto/2\.9\.(1[6-8]\d|190) Version/1[0-2]\.00`
)

func TestRenderGrammar(t *testing.T) {
	tests := []struct {
		name    string
		browser Browser
		os      OS
		chipset Chipset
		re      string
		same    [2]int // capture groups that must hold the same value
	}{
		{"firefox windows", Firefox, Windows, X86,
			`^Mozilla/5\.0 \(` + reNT + `; en-GB; rv:1\.9\.[0-2]\.20\) ` + reGecko, [2]int{}},
		{"firefox linux", Firefox, Linux, X64,
			`^Mozilla/5\.0 \(X11; Linux x86_64; rv:[5-7]\.0\) ` + reGecko, [2]int{}},
		{"firefox mac", Firefox, MacOSX, UIntel,
			`^Mozilla/5\.0 \(Macintosh; U; Intel ` + reMac + ` rv:[2-6]\.0\) ` + reGecko, [2]int{}},
		{"safari windows", Safari, Windows, X64,
			`^Mozilla/5\.0 \(Windows; U; ` + reNT + `\) AppleWebKit/` + reSaf +
				` \(KHTML, like Gecko\) Version/` + reVer + ` Safari/` + reSaf + `$`, [2]int{1, 4}},
		{"safari mac", Safari, MacOSX, PPC,
			`^Mozilla/5\.0 \(Macintosh; U; PPC ` + reMac + ` rv:[2-6]\.0; en-GB\) AppleWebKit/` + reSaf +
				` \(KHTML, like Gecko\) Version/` + reVer + ` Safari/` + reSaf + `$`, [2]int{1, 4}},
		{"iexplorer windows", IExplorer, Windows, Intel,
			`^Mozilla/[45]\.0 \(compatible; MSIE [5-9]\.0; ` + reNT + `; Trident/[3-5]\.[01]\)` + reExtra + `$`, [2]int{}},
		{"opera linux", Opera, Linux, X86,
			`^Opera/[89]\.[1-9]\d \(X11; Linux i686; U; en-GB\) ` + rePrst + reExtra + `$`, [2]int{}},
		{"opera windows", Opera, Windows, X86,
			`^Opera/[89]\.[1-9]\d \(` + reNT + `; U; en-GB\) ` + rePrst + reExtra + `$`, [2]int{}},
		{"chrome linux", Chrome, Linux, X86,
			`^Mozilla/5\.0\(X11; Linux i686\) ` + reChr, [2]int{1, 2}},
		{"chrome windows", Chrome, Windows, X86,
			`^Mozilla/5\.0\(` + reNT + `\) ` + reChr, [2]int{1, 2}},
		{"chrome mac", Chrome, MacOSX, UPPC,
			`^Mozilla/5\.0\(Macintosh; U; U; PPC ` + reMac + `\) ` + reChr, [2]int{1, 2}},
	}
	renderers := defaultRenderers()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.re)
			sel := Selection{OS: tt.os, Chipset: tt.chipset, Browser: tt.browser, Locale: EnGB}
			for seed := int64(0); seed < 200; seed++ {
				ua, ok := renderers[tt.browser].render(sel, testDice(seed))
				require.True(t, ok)
				m := re.FindStringSubmatch(ua)
				require.NotNil(t, m, "%q does not match %s", ua, tt.re)
				if tt.same[0] > 0 {
					assert.Equal(t, m[tt.same[0]], m[tt.same[1]], ua)
				}
			}
		})
	}
}

func TestRenderUnsupported(t *testing.T) {
	for b, r := range defaultRenderers() {
		for _, o := range AllOS {
			sel := Selection{OS: o, Chipset: X86, Browser: b, Locale: EnUS}
			ua, ok := r.render(sel, testDice(1))
			assert.Equal(t, r.supports(o), ok, "%v on %v", b, o)
			assert.Equal(t, Supports(b, o), ok, "%v on %v", b, o)
			if !ok {
				assert.Empty(t, ua, "no partial output for %v on %v", b, o)
			}
		}
	}
}

func TestSupportMatrix(t *testing.T) {
	want := map[Browser][]OS{
		Firefox:   {Windows, Linux, MacOSX},
		Safari:    {Windows, MacOSX},
		IExplorer: {Windows},
		Opera:     {Linux, Windows},
		Chrome:    {Linux, Windows, MacOSX},
	}
	for _, b := range AllBrowsers {
		for _, o := range AllOS {
			assert.Equal(t, contains(want[b], o), Supports(b, o), "%v on %v", b, o)
		}
	}
	assert.False(t, Supports(Browser(0), Windows))
}

func TestFirefoxBuildDate(t *testing.T) {
	re := regexp.MustCompile(`Gecko/(\d{8}) `)
	sel := Selection{OS: Linux, Chipset: X86, Browser: Firefox, Locale: EnUS}
	for seed := int64(0); seed < 200; seed++ {
		ua, ok := firefox{}.render(sel, testDice(seed))
		require.True(t, ok)
		m := re.FindStringSubmatch(ua)
		require.NotNil(t, m, ua)
		d, err := time.Parse(buildDateFormat, m[1])
		require.NoError(t, err)
		assert.False(t, d.Before(epoch), ua)
		assert.False(t, d.After(testNow), ua)
	}
}

func TestDiceDateStaysWithinLocalToday(t *testing.T) {
	// 23:30 on Jan 1st at UTC-8 is already Jan 2nd in UTC.
	now := time.Date(2011, time.January, 1, 23, 30, 0, 0, time.FixedZone("PST", -8*3600))
	for seed := int64(0); seed < 200; seed++ {
		d := &dice{rnd: rand.New(rand.NewSource(seed)), now: now}
		assert.Equal(t, "20110101", d.date().Format(buildDateFormat))
	}
}

func TestDiceDateBeforeEpoch(t *testing.T) {
	d := &dice{rnd: rand.New(rand.NewSource(1)), now: epoch.Add(-time.Hour)}
	assert.Equal(t, epoch, d.date())
}

func TestDiceBetween(t *testing.T) {
	d := testDice(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := d.between(4320, 4325)
		require.GreaterOrEqual(t, v, 4320)
		require.LessOrEqual(t, v, 4325)
		seen[v] = true
	}
	assert.Len(t, seen, 6)
}

func contains(list []OS, o OS) bool {
	for _, v := range list {
		if v == o {
			return true
		}
	}
	return false
}
