package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/dotori/internal/checklist"
	"github.com/alexanderramin/dotori/internal/config"
	"github.com/alexanderramin/dotori/internal/input"
	"github.com/alexanderramin/dotori/internal/logger"
	"github.com/alexanderramin/dotori/internal/nba"
	"github.com/alexanderramin/dotori/internal/service"
)

// 2025-03-10 09:00 in Seoul.
var testNow = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

// testApp wires an App with default config, a test logger and a fixed clock.
func testApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	log := logger.NewTestLogger(t)
	clock := func() time.Time { return testNow }
	return &App{
		Config: cfg,
		Log:    log,
		Advisor: service.NewAdvisor(cfg,
			service.WithLogger(log),
			service.WithClock(clock),
		),
		Clock:         clock,
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeFixture(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const facilityYAML = `
id: f1
name: 해오름어린이집
type: 국공립
status: waiting
address: 서울특별시 강남구 역삼동 1
capacity: {total: 30, current: 28, waiting: 6}
features: [숲활동, CCTV]
rating: 4.6
reviewCount: 25
teacherCount: 5
evaluationGrade: A
operatingHours: {open: "07:30", close: "19:30", extendedCare: true}
`

const facilitiesYAML = `
- id: f1
  name: 해오름어린이집
  type: 국공립
  status: available
  capacity: {total: 30, current: 25, waiting: 0}
  rating: 4.6
  reviewCount: 25
- id: f2
  name: 별빛어린이집
  type: 민간
  status: full
  capacity: {total: 20, current: 20, waiting: 4}
  rating: 4.1
  reviewCount: 8
`

const childYAML = `
id: c1
name: 도토리
birthDate: "2023-01-15"
`

// --- analysis commands ---

func TestClassifyCmd_Text(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "classify", "반편성", "때문에", "너무", "힘들어")
	require.NoError(t, err)
	assert.Contains(t, out, "transfer")
	assert.Contains(t, out, "반편성")
}

func TestClassifyCmd_JSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "classify", "--output", "json", "강남구 국공립 추천해줘")
	require.NoError(t, err)

	var res service.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "recommend", string(res.Intent))
	assert.Equal(t, "강남구", res.Region.District)
}

func TestClassifyCmd_WithHistory(t *testing.T) {
	history := writeFixture(t, "h.yaml", `
- role: user
  content: 강남 추천해줘
- role: assistant
  content: 한 곳을 찾았어요
  blocks:
    - type: facility_list
      facilities:
        - {id: f1, name: 해오름어린이집, type: 국공립, status: available, capacity: {total: 30}}
`)
	out, err := executeCmd(t, testApp(t), "classify", "-o", "json", "--history", history, "여기 어때?")
	require.NoError(t, err)

	var res service.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"f1"}, res.Context.MentionedFacilityIDs)
}

func TestClassifyCmd_RequiresMessage(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "classify")
	assert.Error(t, err)
}

func TestContextCmd(t *testing.T) {
	history := writeFixture(t, "h.yaml", "- role: user\n  content: 마포구 민간 어린이집\n")
	out, err := executeCmd(t, testApp(t), "context", "--history", history)
	require.NoError(t, err)
	assert.Contains(t, out, "마포구")
	assert.Contains(t, out, "민간")
}

func TestContextCmd_RequiresHistory(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "context")
	assert.ErrorContains(t, err, "history")
}

func TestRegionCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "-o", "json", "region", `"분당구" 국공립 알려줘`)
	require.NoError(t, err)

	var res struct {
		Region       struct{ Province, District string }
		FacilityType string `json:"facilityType"`
		Query        string `json:"query"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "경기도", res.Region.Province)
	assert.Equal(t, "국공립", res.FacilityType)
	assert.NotContains(t, res.Query, `"`)
}

func TestAgeCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "age", "2023-01-15", "--on", "2025-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, "26개월")
	assert.Contains(t, out, "만2세반")
}

func TestAgeCmd_DefaultsToConfiguredToday(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "-o", "json", "age", "2024-01-15")
	require.NoError(t, err)
	assert.Contains(t, out, `"on": "2025-03-10"`)
}

func TestAgeCmd_InvalidDates(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad birth", []string{"age", "2023-02-30"}},
		{"bad on", []string{"age", "2023-01-15", "--on", "tomorrow"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, testApp(t), tt.args...)
			assert.ErrorContains(t, err, "YYYY-MM-DD")
		})
	}
}

// --- decision commands ---

func TestNBACmd(t *testing.T) {
	ctxFile := writeFixture(t, "ctx.yaml", `
user:
  id: u1
  onboardingCompleted: false
`)
	out, err := executeCmd(t, testApp(t), "-o", "json", "nba", "--input", ctxFile)
	require.NoError(t, err)

	var items []nba.Item
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.NotEmpty(t, items)
	assert.Equal(t, "onboarding_incomplete", items[0].ID)
	assert.LessOrEqual(t, len(items), nba.DefaultMaxActions)
}

func TestNBACmd_AnonymousText(t *testing.T) {
	ctxFile := writeFixture(t, "ctx.yaml", "alertCount: 0\n")
	out, err := executeCmd(t, testApp(t), "nba", "--input", ctxFile)
	require.NoError(t, err)
	assert.Contains(t, out, "login_cta")
}

func TestReportCmd(t *testing.T) {
	facilities := writeFixture(t, "fs.yaml", facilitiesYAML)
	child := writeFixture(t, "c.yaml", childYAML)

	out, err := executeCmd(t, testApp(t), "report", "--facilities", facilities, "--child", child)
	require.NoError(t, err)
	assert.Contains(t, out, "해오름어린이집 vs 별빛어린이집 비교 리포트")
	assert.Contains(t, out, "요약")
}

func TestReportCmd_SchemaRejectsSingleFacility(t *testing.T) {
	facilities := writeFixture(t, "fs.yaml", "- {id: f1, name: A, type: 민간, status: full, capacity: {total: 10}}\n")
	_, err := executeCmd(t, testApp(t), "report", "--facilities", facilities)
	assert.ErrorIs(t, err, input.ErrSchemaViolation)
}

func TestChecklistProfileCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "-o", "json", "checklist", "profile",
		"--type", "국공립", "--birth", "2023-01-15", "--dual-income")
	require.NoError(t, err)

	var c checklist.Checklist
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, "국공립 어린이집 입소 서류 체크리스트", c.Title)
	assert.NotNil(t, c.Category(checklist.CategoryPriority))
	assert.NotNil(t, c.Category(checklist.CategoryReference))
}

func TestChecklistProfileCmd_RequiresType(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "checklist", "profile")
	assert.ErrorContains(t, err, "facility type is required")
}

func TestChecklistProfileCmd_InteractiveNeedsTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "checklist", "profile", "--interactive")
	assert.ErrorContains(t, err, "terminal")
}

func TestChecklistProfileCmd_InteractiveUsesFormAnswers(t *testing.T) {
	orig := runForm
	t.Cleanup(func() { runForm = orig })
	runForm = func(a *profileAnswers) error {
		a.facilityType = "사립유치원"
		a.situations = []string{situationSingle}
		return nil
	}

	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	out, err := executeCmd(t, app, "-o", "json", "checklist", "profile", "-i")
	require.NoError(t, err)

	var c checklist.Checklist
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, "사립유치원 입학 서류 체크리스트", c.Title)
	assert.NotNil(t, c.Category(checklist.CategoryPriority))
}

func TestChecklistFacilityCmd(t *testing.T) {
	facility := writeFixture(t, "f.yaml", facilityYAML)
	out, err := executeCmd(t, testApp(t), "checklist", "facility", "--facility", facility)
	require.NoError(t, err)
	assert.Contains(t, out, "해오름어린이집 입소 준비 체크리스트")
}

func TestChecklistFacilityCmd_WithoutFacility(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "checklist", "facility")
	require.NoError(t, err)
	assert.Contains(t, out, "시설 입소 준비 체크리스트")
}

func TestInsightsCmd(t *testing.T) {
	facility := writeFixture(t, "f.yaml", facilityYAML)
	out, err := executeCmd(t, testApp(t), "-o", "json", "insights", "--facility", facility)
	require.NoError(t, err)

	var items []struct{ Text, Sentiment, Source string }
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.NotEmpty(t, items)
	assert.LessOrEqual(t, len(items), 5)
}

func TestReasonsCmd(t *testing.T) {
	facility := writeFixture(t, "f.yaml", facilityYAML)
	out, err := executeCmd(t, testApp(t), "reasons", "--facility", facility)
	require.NoError(t, err)
	assert.Contains(t, out, "public_waitlist")
}

func TestReasonsCmd_WaitlistWonSuppressesWaitlistReason(t *testing.T) {
	facility := writeFixture(t, "f.yaml", facilityYAML)
	out, err := executeCmd(t, testApp(t), "-o", "json", "reasons", "--facility", facility, "--waitlist-won")
	require.NoError(t, err)
	assert.NotContains(t, out, "public_waitlist")
}

// --- global flags ---

func TestRootCmd_InvalidOutputFormat(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "-o", "xml", "age", "2023-01-15")
	assert.ErrorContains(t, err, "invalid config")
}

func TestRootCmd_ConfigFileOverridesDefaults(t *testing.T) {
	cfgPath := writeFixture(t, "dotori.yaml", "output:\n  format: json\n")
	app := testApp(t)
	out, err := executeCmd(t, app, "--config", cfgPath, "age", "2023-01-15", "--on", "2025-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, `"months": 26`)
}

func TestRootCmd_FlagsApplyToOneInvocation(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "-o", "json", "--log-level", "debug", "age", "2023-01-15", "--on", "2025-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, `"months": 26`)
	assert.Equal(t, "debug", app.Config.Log.Level)

	out, err = executeCmd(t, app, "age", "2023-01-15", "--on", "2025-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, "26개월")
	assert.NotContains(t, out, `"months"`)
	assert.Equal(t, "text", app.Config.Output.Format)
	assert.Equal(t, "warn", app.Config.Log.Level)
}

func TestRootCmd_ConfigFileRebuildsAdvisor(t *testing.T) {
	cfgPath := writeFixture(t, "dotori.yaml", "nba:\n  max_actions: 1\n")
	ctxFile := writeFixture(t, "ctx.yaml", `
user:
  id: u1
  onboardingCompleted: true
`)
	app := testApp(t)

	out, err := executeCmd(t, app, "-o", "json", "--config", cfgPath, "nba", "--input", ctxFile)
	require.NoError(t, err)
	var items []nba.Item
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Len(t, items, 1)

	out, err = executeCmd(t, app, "-o", "json", "nba", "--input", ctxFile)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Greater(t, len(items), 1)
}

func TestShellCmd_RequiresTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "shell")
	assert.ErrorContains(t, err, "interactive terminal")
}
