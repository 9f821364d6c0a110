package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rihenm13-code/password-checker/internal/clipboard"
	"github.com/rihenm13-code/password-checker/internal/config"
	"github.com/rihenm13-code/password-checker/internal/discovery"
	"github.com/rihenm13-code/password-checker/internal/logging"
	"github.com/rihenm13-code/password-checker/internal/scoring"
	"github.com/rihenm13-code/password-checker/internal/strength"
	"github.com/rihenm13-code/password-checker/internal/tui"
	"github.com/rihenm13-code/password-checker/internal/ui"
	"github.com/rihenm13-code/password-checker/internal/urls"
)

// errReported means the failure was already shown to the user
var errReported = errors.New("failed")

// clip is the clipboard used by one-shot commands
var clip clipboard.Service = clipboard.System

// Command flags
var (
	discover     bool
	jsonOutput   bool
	requireLabel string
	copyResult   bool
	scanTimeout  time.Duration
	scanUse      bool
	initForce    bool
)

func init() {
	rootCmd.Flags().BoolVar(&discover, "discover", false, "Find a scoring service with mDNS before starting")

	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the assessment as JSON")
	checkCmd.Flags().StringVar(&requireLabel, "require", "", `Exit with an error below this label (e.g. "Good")`)

	generateCmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the generated password to the clipboard")
	generateCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")

	scanCmd.Flags().DurationVar(&scanTimeout, "scan-timeout", discovery.DefaultScanTimeout, "How long to listen for services")
	scanCmd.Flags().BoolVar(&scanUse, "use", false, "Save the first service found as server_url")

	configInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configPathCmd, configShowCmd, configInitCmd)

	rootCmd.AddCommand(checkCmd, generateCmd, scanCmd, configCmd)
}

// runInteractive launches the full-screen checker
func runInteractive(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal() {
		return fmt.Errorf("the interactive checker needs a terminal; use 'pwcheck check' for piped input")
	}

	if discover {
		scanner := discovery.NewScanner()
		svc, err := scanner.First(cmd.Context())
		if err != nil {
			return fmt.Errorf("service discovery failed: %w", err)
		}
		cfg.ServerURL = svc.BaseURL()
		logging.Info("Using discovered service", zap.String("instance", svc.Instance), zap.String("url", cfg.ServerURL))
	}

	return tui.Run(cmd.Context(), tui.Options{
		Scorer:               newClient(),
		ServerURL:            cfg.ServerURL,
		NotificationLifetime: cfg.NotificationLifetime,
		Masked:               cfg.MaskInput,
	})
}

var checkCmd = &cobra.Command{
	Use:   "check [password]",
	Short: "Check the strength of one password",
	Long: `Send one password to the scoring service and print the assessment.

When the password argument is omitted it is read from the terminal without
echo, or from the first line of standard input when piped. Prefer this over
passing the password as an argument, which leaves it in shell history.`,
	Example: `  # Prompt without echo
  pwcheck check

  # From a pipe
  echo 'correct horse battery staple' | pwcheck check

  # Fail in scripts when weaker than "Good"
  pwcheck check --require Good < secret.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	var required strength.Label
	if requireLabel != "" {
		required = strength.ParseLabel(requireLabel)
		if required == strength.Unknown {
			return fmt.Errorf("unknown label %q for --require", requireLabel)
		}
	}

	password, err := passwordArg(cmd, args)
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	a, err := newClient().Check(cmd.Context(), password)
	if err != nil {
		return reportServiceError(p, "Password check failed", err)
	}

	if jsonOutput {
		if err := writeJSON(cmd.OutOrStdout(), assessmentJSON(a)); err != nil {
			return err
		}
	} else {
		p.PrintAssessment(a)
	}

	if required != strength.Unknown && a.Label < required {
		return fmt.Errorf("password strength %q is below the required %q", a.LabelText, required)
	}
	return nil
}

// passwordArg returns the argument, or reads the password from stdin
func passwordArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		if args[0] == "" {
			return "", ui.ErrNoInput
		}
		return args[0], nil
	}
	if in := cmd.InOrStdin(); in != os.Stdin {
		return ui.ReadPasswordFrom(in)
	}
	return ui.ReadPassword("Password: ")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a strong password",
	Long: `Ask the scoring service for a new password and print it with its
assessment. Use --length to request a specific length (8-32).`,
	Example: `  pwcheck generate
  pwcheck generate --length 24 --copy`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())

	gen, err := newClient().Generate(cmd.Context())
	if err != nil {
		return reportServiceError(p, "Password generation failed", err)
	}

	if jsonOutput {
		out := assessmentJSON(gen.Assessment)
		out.Password = gen.Password
		if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
			return err
		}
	} else {
		p.PrintGenerated(gen)
	}

	if copyResult {
		if err := clip.CopyText(gen.Password); err != nil {
			logging.Warn("Copy failed", zap.Error(err))
			p.PrintWarning("Failed to copy", ui.Param{Key: "Reason", Value: err.Error()})
			return errReported
		}
		if !jsonOutput {
			p.PrintSuccess("Password copied!", ui.Param{Key: "Length", Value: strconv.Itoa(len([]rune(gen.Password)))})
		}
	}
	return nil
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find scoring services on the local network",
	Long: `Listen for scoring services advertising "_pwcheck._tcp" over mDNS and
list them. Every service found is remembered in the config file; --use
also makes the first one the default server.`,
	Example: `  pwcheck scan
  pwcheck scan --scan-timeout 10s --use`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Service discovery", "pwcheck scan",
		ui.Param{Key: "Service", Value: discovery.ServiceType},
		ui.Param{Key: "Timeout", Value: scanTimeout.String()},
	)

	scanner := discovery.NewScanner()
	scanner.Timeout = scanTimeout
	services, err := scanner.Scan(cmd.Context())
	if err != nil {
		p.PrintError("Scan failed", err, []string{
			"mDNS needs a multicast-capable network interface",
			"Check that your firewall allows UDP port 5353",
		})
		return errReported
	}

	if len(services) == 0 {
		p.PrintWarning("No services found")
		p.Println("  Pass --server to use a service by URL, or see " + urls.ServiceSetup)
		return nil
	}

	// Only discovery results are written back; flag and env overrides
	// stay out of the file.
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	stored, err := config.Load(path)
	if err != nil {
		return err
	}
	now := time.Now()
	for i, svc := range services {
		result := ui.NewSuccessResult(svc.Instance).SetWidth(p.Width()).
			AddDetail("URL", svc.BaseURL()).
			AddDetail("Host", svc.Hostname)
		if v := svc.Version(); v != "" {
			result.AddDetail("Version", v)
		}
		p.Println(result.Render())

		stored.RememberServer(svc.Instance, svc.BaseURL(), svc.Version(), now)
		if i == 0 && scanUse {
			stored.ServerURL = svc.BaseURL()
		}
	}

	if err := stored.Save(path); err != nil {
		return err
	}
	logging.Info("Remembered services", zap.Int("count", len(services)), zap.String("path", path))
	if scanUse {
		p.Println("  Default server set to " + stored.ServerURL)
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the config file",
	// The config file may be broken; these commands must still work
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadSettings(cmd, args); err != nil {
			return err
		}
		out, err := cfg.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		p := ui.NewPrinter(cmd.OutOrStdout())
		force := initForce
		if !force && fileExists(path) && ui.IsTerminal() {
			force = p.Confirm(cmd.InOrStdin(), "Config file exists",
				[]string{path, "Your current settings and remembered services will be replaced"},
				"Overwrite it?")
			if !force {
				return nil
			}
		}

		if _, err := config.Init(path, force); err != nil {
			return err
		}
		p.PrintSuccess("Config file written", ui.Param{Key: "Path", Value: path})
		return nil
	},
}

// reportServiceError prints a failure box with hints matching err
func reportServiceError(p *ui.Printer, title string, err error) error {
	logging.Warn(title, zap.Error(err))
	p.PrintError(title, errors.New(scoring.ShortMessage(err)), troubleshooting(err))
	return errReported
}

// troubleshooting returns hints for a scoring error
func troubleshooting(err error) []string {
	switch {
	case scoring.IsNetworkError(err):
		return []string{
			"Is the scoring service running at " + cfg.ServerURL + "?",
			"Pass --server or set " + config.EnvServerURL + " to use another URL",
			"Run 'pwcheck scan' to find services on your network",
			"Setup guide: " + urls.ServiceSetup,
		}
	case scoring.IsHTTPError(err):
		return []string{
			"The service rejected the request",
			"Check that --length is between 8 and 32",
		}
	case scoring.IsParseError(err):
		return []string{
			"The URL may not point to a pwcheck scoring service",
			"Report persistent problems at " + urls.Issues,
		}
	default:
		return nil
	}
}

// resultJSON is the machine-readable output of check and generate
type resultJSON struct {
	Password   string   `json:"password,omitempty"`
	Percentage float64  `json:"percentage"`
	Strength   string   `json:"strength"`
	Color      string   `json:"color"`
	Feedback   []string `json:"feedback"`
}

func assessmentJSON(a strength.Assessment) resultJSON {
	feedback := a.Feedback
	if feedback == nil {
		feedback = []string{}
	}
	return resultJSON{
		Percentage: a.Percentage,
		Strength:   a.LabelText,
		Color:      string(a.Color()),
		Feedback:   feedback,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
