package competitor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/saleslens/saleslens/collector"
)

const competitorHomeHTML = `<html>
<head>
<title>Zenith Alerts - On-call for modern teams</title>
<meta name="description" content="Zenith Alerts is an incident response platform for engineering teams.">
</head>
<body>
<h2>Smart Routing</h2><p>Alerts reach the right engineer on the first page.</p>
<h2>Postmortems</h2><p>Generate timelines automatically after every incident.</p>
</body>
</html>`

const targetHomeHTML = `<html><body>
<p>Acme ships observability tooling. Teams moving off Zenith Alerts onboard in a day.</p>
<a href="/integrations">Integrations</a>
</body></html>`

const targetIntegrationsHTML = `<html><body>
<p>Our marketplace also connects with Zenith Alerts webhooks.</p>
</body></html>`

func serve(t *testing.T, pages map[string]string) string {
	t.Helper()
	mux := http.NewServeMux()
	for path, html := range pages {
		path, body := path, html
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != path {
				http.NotFound(w, r)
				return
			}
			w.Write([]byte(body))
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server.URL
}

func fastClient() *collector.Client {
	return collector.NewClient(collector.WithRateLimiter(rate.NewLimiter(rate.Inf, 1)))
}

func TestAnalyze(t *testing.T) {
	competitorURL := serve(t, map[string]string{"/": competitorHomeHTML})
	targetURL := serve(t, map[string]string{
		"/":             targetHomeHTML,
		"/integrations": targetIntegrationsHTML,
	})

	a, err := NewAnalyzer(WithClient(fastClient()), WithPoolSize(2))
	require.NoError(t, err)
	defer a.Release()

	analysis := a.Analyze(context.Background(), targetURL, []string{competitorURL, ""})

	require.Len(t, analysis.Competitors, 1, "blank competitor entries are skipped")
	profile := analysis.Competitors[competitorURL]
	require.NotNil(t, profile)

	assert.Equal(t, "Zenith Alerts", profile.Name, "tagline stripped from title")
	assert.Contains(t, profile.Description, "incident response platform")
	assert.Contains(t, profile.MainFeatures, "Smart Routing: Alerts reach the right engineer")
	assert.Contains(t, profile.MainFeatures, "Postmortems:")
	assert.Equal(t, unknownDifferentiators, profile.Differentiators)

	// Mentions found on both the homepage and the integrations page.
	require.NotEmpty(t, profile.Mentions)
	assert.Contains(t, profile.Mentions[0], "mention(s) of Zenith Alerts")
	joined := ""
	for _, line := range profile.Mentions[1:] {
		joined += line + "\n"
	}
	assert.Contains(t, joined, "moving off Zenith Alerts")
	assert.Contains(t, joined, "Zenith Alerts webhooks")
}

func TestAnalyzeUnreachableCompetitor(t *testing.T) {
	targetURL := serve(t, map[string]string{"/": targetHomeHTML})
	downURL := serve(t, map[string]string{}) // every path 404s

	a, err := NewAnalyzer(WithClient(fastClient()))
	require.NoError(t, err)
	defer a.Release()

	analysis := a.Analyze(context.Background(), targetURL, []string{downURL})

	profile := analysis.Competitors[downURL]
	require.NotNil(t, profile)
	assert.Equal(t, "Could not access website", profile.Name)
	assert.Equal(t, "Failed to retrieve data", profile.Description)
	assert.Empty(t, profile.Mentions)
}

func TestCompanyName(t *testing.T) {
	tests := []struct {
		name string
		page string
		url  string
		want string
	}{
		{
			name: "og site name wins",
			page: `<meta property="og:site_name" content="Zenith Alerts | Status"><title>Something Else</title>`,
			url:  "https://zenithalerts.example",
			want: "Zenith Alerts",
		},
		{
			name: "title with tagline",
			page: `<title>Zenith Alerts - On-call for modern teams</title>`,
			url:  "https://zenithalerts.example",
			want: "Zenith Alerts",
		},
		{
			name: "title filler words removed",
			page: `<title>Welcome to Zenith</title>`,
			url:  "https://zenithalerts.example",
			want: "Zenith",
		},
		{
			name: "domain fallback",
			page: `<html></html>`,
			url:  "https://zenithalerts.example/about",
			want: "Zenithalerts",
		},
		{
			name: "no signal at all",
			page: `<html></html>`,
			url:  "",
			want: "Unknown Company",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompanyName(tt.page, tt.url))
		})
	}
}

func TestDescriptionFallsBackToParagraph(t *testing.T) {
	page := `<p>short</p><p>This paragraph is comfortably past the one hundred character floor used to separate boilerplate from real company copy.</p>`

	assert.Contains(t, Description(page), "comfortably past the one hundred character floor")
}

func TestDescriptionNoSignal(t *testing.T) {
	assert.Equal(t, "No description available", Description("<html></html>"))
}

func TestMainFeaturesLimitsToThree(t *testing.T) {
	page := `<h2>A</h2><p>one</p><h2>B</h2><p>two</p><h2>C</h2><p>three</p><h2>D</h2><p>four</p>`

	features := MainFeatures(page)

	assert.Contains(t, features, "A: one")
	assert.Contains(t, features, "C: three")
	assert.NotContains(t, features, "D: four")
}

func TestMainFeaturesNone(t *testing.T) {
	assert.Equal(t, "No feature information available", MainFeatures("<html><p>no headings</p></html>"))
}
