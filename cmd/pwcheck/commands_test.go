package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/rihenm13-code/password-checker/internal/config"
	"github.com/rihenm13-code/password-checker/internal/scoring"
	"github.com/rihenm13-code/password-checker/internal/urls"
)

// useServer points cfg at a test scoring service and resets command flags
func useServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	prev := cfg
	cfg = config.Default()
	cfg.ServerURL = srv.URL
	jsonOutput, requireLabel = false, ""
	t.Cleanup(func() {
		cfg = prev
		jsonOutput, requireLabel = false, ""
	})
}

func runCheckWith(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	checkCmd.SetOut(&out)
	checkCmd.SetIn(strings.NewReader(stdin))
	checkCmd.SetContext(context.Background())
	err := runCheck(checkCmd, args)
	return out.String(), err
}

func checkHandler(t *testing.T, wantPassword string, reply string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/check" {
			t.Errorf("path = %q, want /api/check", r.URL.Path)
		}
		var body struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body.Password != wantPassword {
			t.Errorf("password = %q, want %q", body.Password, wantPassword)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reply))
	}
}

func TestRunCheck_JSONFromStdin(t *testing.T) {
	useServer(t, checkHandler(t, "hunter2", `{"percentage": 25, "strength": "Weak", "feedback": ["Add more words"]}`))
	jsonOutput = true

	out, err := runCheckWith(t, "hunter2\n")
	if err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}

	var got resultJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Percentage != 25 || got.Strength != "Weak" {
		t.Errorf("got %+v", got)
	}
	if got.Color != "#f97316" {
		t.Errorf("Color = %q, want #f97316", got.Color)
	}
	if len(got.Feedback) != 1 || got.Feedback[0] != "Add more words" {
		t.Errorf("Feedback = %v", got.Feedback)
	}
	if got.Password != "" {
		t.Error("check output must not echo the password")
	}
}

func TestRunCheck_EmptyFeedbackIsEmptyList(t *testing.T) {
	useServer(t, checkHandler(t, "x", `{"percentage": 100, "strength": "Very Strong", "feedback": []}`))
	jsonOutput = true

	out, err := runCheckWith(t, "", "x")
	if err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}
	if !strings.Contains(out, `"feedback": []`) {
		t.Errorf("expected an empty feedback list, got:\n%s", out)
	}
}

func TestRunCheck_Require(t *testing.T) {
	tests := []struct {
		name    string
		require string
		wantErr bool
	}{
		{"below", "Good", true},
		{"equal", "Fair", false},
		{"above", "Weak", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useServer(t, checkHandler(t, "pw", `{"percentage": 50, "strength": "Fair", "feedback": []}`))
			requireLabel = tt.require

			_, err := runCheckWith(t, "", "pw")
			if (err != nil) != tt.wantErr {
				t.Errorf("runCheck() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunCheck_RequireUnknownLabel(t *testing.T) {
	useServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("service must not be called")
	})
	requireLabel = "Excellent"

	_, err := runCheckWith(t, "", "pw")
	if err == nil || !strings.Contains(err.Error(), "Excellent") {
		t.Errorf("runCheck() error = %v, want unknown label error", err)
	}
}

func TestRunCheck_ServiceError(t *testing.T) {
	useServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	out, err := runCheckWith(t, "", "pw")
	if !errors.Is(err, errReported) {
		t.Fatalf("runCheck() error = %v, want errReported", err)
	}
	if !strings.Contains(out, "Password check failed") {
		t.Errorf("failure box missing from output:\n%s", out)
	}
}

func TestRunCheck_NoInput(t *testing.T) {
	useServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("service must not be called")
	})

	if _, err := runCheckWith(t, "\n"); err == nil {
		t.Error("expected an error for an empty password")
	}
}

func TestApplyFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringVar(&serverURL, "server", "", "")
	fs.DurationVar(&requestTimeout, "timeout", config.DefaultTimeout, "")
	fs.StringVar(&logLevel, "log-level", "", "")
	fs.IntVar(&generateLength, "length", 0, "")
	t.Cleanup(func() {
		serverURL, requestTimeout, logLevel, generateLength = "", config.DefaultTimeout, "", 0
	})

	if err := fs.Parse([]string{"--server", "http://scorer:8080", "--length", "16"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	c := config.Default()
	c.Timeout = 30 * time.Second
	c.LogLevel = "debug"
	applyFlags(c, fs)

	if c.ServerURL != "http://scorer:8080" {
		t.Errorf("ServerURL = %q", c.ServerURL)
	}
	if c.GenerateLength != 16 {
		t.Errorf("GenerateLength = %d, want 16", c.GenerateLength)
	}
	if c.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, unset flag must not override", c.Timeout)
	}
	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, unset flag must not override", c.LogLevel)
	}
}

func TestTroubleshooting(t *testing.T) {
	prev := cfg
	cfg = config.Default()
	t.Cleanup(func() { cfg = prev })

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"network", &scoring.ServiceError{Type: scoring.ErrTypeConnectionRefused, Op: "check", Message: "service refused connection"}, urls.ServiceSetup},
		{"http", scoring.NewHTTPError("generate", http.StatusBadRequest, "bad length"), "--length"},
		{"parse", scoring.NewParseError("check", "bad body", nil), urls.Issues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tips := troubleshooting(tt.err)
			if !strings.Contains(strings.Join(tips, "\n"), tt.want) {
				t.Errorf("tips %v do not mention %q", tips, tt.want)
			}
		})
	}

	if tips := troubleshooting(errors.New("other")); tips != nil {
		t.Errorf("unclassified error tips = %v, want nil", tips)
	}
}
