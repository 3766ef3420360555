// Package main provides the CLI entrypoint for slotword.
package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/slotword/internal/config"
	"github.com/verte-zerg/slotword/internal/fetch"
	"github.com/verte-zerg/slotword/internal/logger"
	"github.com/verte-zerg/slotword/internal/model"
	"github.com/verte-zerg/slotword/internal/pattern"
	"github.com/verte-zerg/slotword/internal/search"
	"github.com/verte-zerg/slotword/internal/stats"
	"github.com/verte-zerg/slotword/internal/store"
	"github.com/verte-zerg/slotword/internal/tui"
	"github.com/verte-zerg/slotword/internal/wordlist"
)

const (
	defaultLang     = "en"
	defaultLength   = pattern.DefaultLength
	defaultCap      = search.DisplayCap
	defaultSource   = model.SourceFile
	defaultLogLevel = "info"
)

// lookupPlaceholder is replaced with the path-escaped word in --lookup-url.
const lookupPlaceholder = "{word}"

var (
	searchLang      string
	searchLocale    string
	searchLength    int
	searchCap       int
	searchSource    string
	searchSeed      int64
	searchLookupURL string
	logLevel        string

	findLinks bool

	fetchLang  string
	fetchURL   string
	fetchForce bool

	importLang string
	importFile string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if hints := errors.FlattenHints(err); hints != "" {
			logErrln(hints)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "slotword",
		Short:         "Find dictionary words matching a letter pattern",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runFinderCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&searchLang, "lang", defaultLang, "dictionary language code")
	pf.StringVar(&searchLocale, "locale", "", "collation locale (default: --lang)")
	pf.IntVar(&searchCap, "cap", defaultCap, "maximum number of words shown per search")
	pf.StringVar(&searchSource, "source", defaultSource, "dictionary source: file or db")
	pf.Int64Var(&searchSeed, "seed", 0, "random seed for sampling (0: time based)")
	pf.StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().IntVar(&searchLength, "length", defaultLength, "initial pattern length")

	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

// resolveConfig merges the config file into flags the user did not set.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, errors.Wrap(err, "failed to load config")
	}
	applyStringConfig(cmd, "lang", &searchLang, fileCfg.Search.Lang)
	applyStringConfig(cmd, "locale", &searchLocale, fileCfg.Search.Locale)
	applyIntConfig(cmd, "length", &searchLength, fileCfg.Search.Length)
	applyIntConfig(cmd, "cap", &searchCap, fileCfg.Search.Cap)
	applyStringConfig(cmd, "source", &searchSource, fileCfg.Search.Source)
	applyStringConfig(cmd, "lookup-url", &searchLookupURL, fileCfg.Search.LookupURL)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Search.LogLevel)

	if err := logger.SetLevel(logLevel); err != nil {
		return model.Config{}, errors.Wrap(err, "invalid --log-level")
	}

	cfg := model.Config{
		Lang:      strings.ToLower(strings.TrimSpace(searchLang)),
		Locale:    strings.TrimSpace(searchLocale),
		Length:    searchLength,
		Cap:       searchCap,
		Source:    searchSource,
		Seed:      searchSeed,
		LookupURL: searchLookupURL,
	}
	if err := model.ValidateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newEngine(cfg model.Config) *search.Engine {
	var sampler *search.Sampler
	if cfg.Seed != 0 {
		sampler = search.NewSeededSampler(cfg.Seed)
	}
	return search.New(search.Config{Cap: cfg.Cap, Locale: cfg.Locale, Sampler: sampler})
}

// openLoader returns the dictionary loader for cfg and a cleanup func.
func openLoader(cfg model.Config) (wordlist.Loader, func(), error) {
	if cfg.Source == model.SourceDB {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to open db")
		}
		cleanup := func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}
		return store.Loader{Store: st, Lang: cfg.Lang}, cleanup, nil
	}
	return wordlist.FileLoader{Path: config.DefaultWordListPath(cfg.Lang), Lang: cfg.Lang}, func() {}, nil
}

func runFinderCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	loader, cleanup, err := openLoader(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	m := tui.NewModel(cfg, newEngine(cfg), loader, logger.New("slotword"))
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return errors.Wrap(err, "failed to run TUI")
	}
	return nil
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find PATTERN",
		Short: "Print words matching PATTERN (? _ . or space for any letter)",
		Args:  cobra.ExactArgs(1),
		RunE:  runFindCmd,
	}
	cmd.Flags().StringVar(&searchLookupURL, "lookup-url", "", "URL template for --links, {word} is replaced")
	cmd.Flags().BoolVar(&findLinks, "links", false, "print a lookup link after each word")
	return cmd
}

func runFindCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := pattern.Parse(args[0])
	if err != nil {
		return err
	}
	if findLinks && cfg.LookupURL == "" {
		return errors.New("--links requires --lookup-url or lookup-url in the config")
	}

	loader, cleanup, err := openLoader(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	dict, err := loader.Load(cmd.Context())
	if err != nil {
		return wordListLoadError(cfg, err)
	}
	if p.Len() > dict.MaxLength() {
		return errors.Wrapf(pattern.ErrInvalidLength, "pattern has %d letters, the longest %s word has %d", p.Len(), cfg.Lang, dict.MaxLength())
	}

	res, err := newEngine(cfg).Search(p, dict)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), res, cfg.LookupURL, findLinks)
}

func writeResult(out, summary io.Writer, res search.Result, lookupURL string, links bool) error {
	switch {
	case res.Total == 0:
		logTo(summary, "No matching words.")
	case res.Sampled:
		logTo(summary, fmt.Sprintf("Found %d matching words (showing %d random):", res.Total, len(res.Shown)))
	default:
		logTo(summary, fmt.Sprintf("Found %d matching words:", res.Total))
	}
	for _, word := range res.Shown {
		line := word
		if links {
			line += "\t" + lookupLink(lookupURL, word)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}
	return nil
}

func lookupLink(template, word string) string {
	return strings.ReplaceAll(template, lookupPlaceholder, url.PathEscape(word))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrap(err, "failed to stat config")
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return errors.Wrap(err, "failed to write config")
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return errors.New("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "failed to open editor")
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available dictionaries",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	langs, err := fileLangs(config.DefaultWordListDir())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, lang := range langs {
		if _, err := fmt.Fprintf(out, "%s\tfile\n", lang); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}

	found := len(langs)
	if _, err := os.Stat(config.DefaultDBPath()); err == nil {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return errors.Wrap(err, "failed to open db")
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		infos, err := st.ListDictionaries(cmd.Context())
		if err != nil {
			return errors.Wrap(err, "failed to list imported dictionaries")
		}
		for _, info := range infos {
			if _, err := fmt.Fprintf(out, "%s\tdb\t%d words\t%s\n", info.Lang, info.Words, info.ImportedAt.Local().Format("2006-01-02")); err != nil {
				return errors.Wrap(err, "failed to write output")
			}
		}
		found += len(infos)
	}

	if found == 0 {
		logErrf("No dictionaries found. Download with: slotword fetch --lang <code> --url <url>\n")
		return errors.New("no dictionaries found")
	}
	return nil
}

func fileLangs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to read wordlist directory")
	}
	langs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		langs = append(langs, strings.TrimSuffix(name, ".txt"))
	}
	sort.Strings(langs)
	return langs, nil
}

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download a newline-delimited word list",
		Args:  cobra.NoArgs,
		RunE:  runFetchCmd,
	}
	cmd.Flags().StringVar(&fetchLang, "lang", "", "language code of the word list")
	cmd.Flags().StringVar(&fetchURL, "url", "", "URL of the word list")
	cmd.Flags().BoolVar(&fetchForce, "force", false, "overwrite an existing word list")
	_ = cmd.MarkFlagRequired("lang")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func runFetchCmd(cmd *cobra.Command, _ []string) error {
	lang := strings.ToLower(strings.TrimSpace(fetchLang))
	if lang == "" {
		return errors.New("--lang must not be empty")
	}
	outPath := config.DefaultWordListPath(lang)
	if !fetchForce {
		if _, err := os.Stat(outPath); err == nil {
			return errors.Newf("word list already exists: %s (use --force to overwrite)", outPath)
		} else if !os.IsNotExist(err) {
			return errors.Wrap(err, "failed to stat word list")
		}
	}

	l := logger.New("fetch")
	l.Info("downloading word list", "lang", lang, "url", fetchURL)
	res, err := fetch.Client{}.Download(cmd.Context(), fetchURL, outPath, lang)
	if err != nil {
		return err
	}
	l.Info("wrote word list", "path", res.Path, "words", res.Words, "bytes", res.Bytes)
	return nil
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a word list file into the dictionary database",
		Args:  cobra.NoArgs,
		RunE:  runImportCmd,
	}
	cmd.Flags().StringVar(&importLang, "lang", "", "language code")
	cmd.Flags().StringVar(&importFile, "file", "", "word list file (default: downloaded list for --lang)")
	_ = cmd.MarkFlagRequired("lang")
	return cmd
}

func runImportCmd(cmd *cobra.Command, _ []string) error {
	lang := strings.ToLower(strings.TrimSpace(importLang))
	path := importFile
	if path == "" {
		path = config.DefaultWordListPath(lang)
	}
	words, err := wordlist.LoadWords(path, lang)
	if err != nil {
		return errors.Wrapf(err, "failed to load word list %s", path)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return errors.Wrap(err, "failed to open db")
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if err := st.ImportWords(cmd.Context(), lang, path, words); err != nil {
		return errors.Wrap(err, "failed to import word list")
	}
	logger.New("import").Info("imported dictionary", "lang", lang, "words", len(words), "from", path)
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the word length distribution of a dictionary",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	var report stats.Report
	if cfg.Source == model.SourceDB {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return errors.Wrap(err, "failed to open db")
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		report, err = stats.BuildReport(cmd.Context(), st, cfg.Lang)
		if err != nil {
			return err
		}
	} else {
		dict, err := wordlist.FileLoader{Path: config.DefaultWordListPath(cfg.Lang), Lang: cfg.Lang}.Load(cmd.Context())
		if err != nil {
			return wordListLoadError(cfg, err)
		}
		report = stats.ReportFromDictionary(dict, model.SourceFile)
	}
	return report.Write(cmd.OutOrStdout(), stats.TerminalWidth())
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# slotword configuration
# Uncomment a value to enable it. CLI flags override config values.

[search]
# lang = %q               # Dictionary language code
# locale = "pl-PL"         # Collation locale (default: lang)
# length = %d              # Initial pattern length
# cap = %d              # Maximum words shown per search
# source = %q           # Dictionary source: file or db
# lookup-url = "https://sjp.pwn.pl/sjp/{word}"  # Link template for find --links
# log-level = %q         # debug, info, warn, error
`,
		defaultLang,
		defaultLength,
		defaultCap,
		defaultSource,
		defaultLogLevel,
	)
}

func wordListLoadError(cfg model.Config, err error) error {
	err = errors.Mark(err, search.ErrDictionaryUnavailable)
	if cfg.Source == model.SourceDB {
		return errors.Wrapf(err, "dictionary %q unavailable", cfg.Lang)
	}
	path := config.DefaultWordListPath(cfg.Lang)
	return errors.WithHintf(
		errors.Wrapf(err, "failed to load word list %s", path),
		"Run: slotword langs\nDownload: slotword fetch --lang %s --url <url>", cfg.Lang,
	)
}

func logTo(w io.Writer, msg string) {
	if _, err := fmt.Fprintln(w, msg); err != nil {
		// Best-effort summary line.
		_ = err
	}
}

func logErrf(format string, args ...any) {
	log.Errorf(strings.TrimSuffix(format, "\n"), args...)
}

func logErrln(args ...any) {
	log.Error(fmt.Sprint(args...))
}
