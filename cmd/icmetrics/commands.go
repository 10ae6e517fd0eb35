package main

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wttj/ic-metrics/internal/adapter/github"
	"github.com/wttj/ic-metrics/internal/analysis"
	"github.com/wttj/ic-metrics/internal/app"
	"github.com/wttj/ic-metrics/internal/database"
	"github.com/wttj/ic-metrics/internal/export"
	"github.com/wttj/ic-metrics/internal/limiter"
	"github.com/wttj/ic-metrics/internal/report"
	"github.com/wttj/ic-metrics/internal/stats"
	"github.com/wttj/ic-metrics/internal/storage"
	"github.com/wttj/ic-metrics/internal/transport"
)

const (
	csvExportDirName   = "csv_exports"
	analysisFileName   = "analysis.json"
	reportFileName     = "report.md"
	aiAnalysisFileName = "ai_analysis.md"

	httpRetries      = 3
	httpRetryBackoff = 2 * time.Second
)

const defaultAnalysisPrompt = "Analyze the following CSV data and provide insights" +
	" about code quality, patterns, and areas of concern."

func newRootCmd(conf Config, l *logrus.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "icmetrics",
		Short:         "Collects and analyzes github contribution data for developers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCollectCmd(conf, l),
		newAnalyzeCmd(conf, l),
		newExportCmd(conf, l),
		newReportCmd(conf, l),
		newAnalyzeCSVCmd(conf, l),
	)

	return root
}

func newCollectCmd(conf Config, l *logrus.Logger) *cobra.Command {
	var since, until string

	cmd := &cobra.Command{
		Use:   "collect <username>",
		Short: "Collect contribution data for a developer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if conf.GithubToken == "" {
				return &app.ConfigurationError{Message: "GITHUB_TOKEN is required"}
			}

			dateRange, err := app.ParseDateRange(since, until)
			if err != nil {
				return err
			}

			client, closeClient, err := buildGithubClient(conf, l)
			if err != nil {
				return err
			}
			defer closeClient()

			service := app.NewService(
				client,
				storage.NewStore(conf.DataDirectory),
				conf.GithubOrg,
				conf.MaxParallelWorkers,
				conf.EnrichCommitStats,
				l,
			)

			_, err = service.CollectDeveloperData(cmd.Context(), args[0], dateRange)
			return err
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "only include contributions from this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&until, "until", "", "only include contributions up to this date, inclusive (YYYY-MM-DD)")

	return cmd
}

func newAnalyzeCmd(conf Config, l *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <username>",
		Short: "Compute statistics over collected data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			store := storage.NewStore(conf.DataDirectory)

			snapshot, err := store.Load(username)
			if err != nil {
				return err
			}

			a := stats.Analyze(snapshot, time.Now())

			data, err := json.MarshalIndent(a, "", "  ")
			if err != nil {
				return fmt.Errorf("serializing analysis: %w", err)
			}
			path, err := store.WriteFile(username, analysisFileName, data)
			if err != nil {
				return err
			}
			l.Infof("analysis saved to %s", path)

			md := report.Markdown(a, snapshot.Organization)
			path, err = store.WriteFile(username, reportFileName, []byte(md))
			if err != nil {
				return err
			}
			l.Infof("report saved to %s", path)

			return nil
		},
	}
}

func newExportCmd(conf Config, l *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "export <username>",
		Short: "Export collected data to CSV files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			store := storage.NewStore(conf.DataDirectory)

			snapshot, err := store.Load(username)
			if err != nil {
				return err
			}

			exporter := export.NewExporter(filepath.Join(store.Dir(username), csvExportDirName), l)
			paths, err := exporter.Export(snapshot)
			if err != nil {
				return err
			}
			for _, p := range paths {
				l.Infof("exported %s", p)
			}

			return nil
		},
	}
}

func newReportCmd(conf Config, l *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "report [username]",
		Short: "Show a developer's report, or list available reports",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storage.NewStore(conf.DataDirectory)

			if len(args) == 0 {
				return listReports(cmd, store)
			}

			username := args[0]
			data, err := os.ReadFile(filepath.Join(store.Dir(username), reportFileName))
			if err != nil {
				if os.IsNotExist(err) {
					return &app.DataNotFoundError{Username: username}
				}
				return fmt.Errorf("reading report: %w", err)
			}
			cmd.Print(string(data))

			return nil
		},
	}
}

func listReports(cmd *cobra.Command, store *storage.Store) error {
	users, err := store.Users()
	if err != nil {
		return err
	}

	cmd.Println("Available reports:")
	for _, user := range users {
		status := "analysis missing, run analyze first"
		if _, err := os.Stat(filepath.Join(store.Dir(user), reportFileName)); err == nil {
			status = "report available"
		}
		cmd.Printf("  %s - %s\n", user, status)
	}

	return nil
}

func newAnalyzeCSVCmd(conf Config, l *logrus.Logger) *cobra.Command {
	var promptFile string

	cmd := &cobra.Command{
		Use:   "analyze-csv <username>",
		Short: "Analyze CSV exports with an AI model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			store := storage.NewStore(conf.DataDirectory)

			csvFiles, err := loadCSVFiles(filepath.Join(store.Dir(username), csvExportDirName))
			if err != nil {
				return err
			}
			if len(csvFiles) == 0 {
				return &app.ConfigurationError{Message: "no csv exports found, run export first"}
			}

			prompt := defaultAnalysisPrompt
			if promptFile != "" {
				data, err := os.ReadFile(promptFile)
				if err != nil {
					return fmt.Errorf("reading prompt file: %w", err)
				}
				prompt = string(data)
			}

			analyzer, err := analysis.NewAnalyzer(conf.OpenAIAPIKey, conf.OpenAIModel, l)
			if err != nil {
				return err
			}

			text, err := analyzer.Analyze(cmd.Context(), analysis.Request{
				Username:     username,
				SystemPrompt: prompt,
				CSVFiles:     csvFiles,
			})
			if err != nil {
				return err
			}

			path, err := store.WriteFile(username, aiAnalysisFileName, []byte(text))
			if err != nil {
				return err
			}
			l.Infof("ai analysis saved to %s", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&promptFile, "prompt-file", "", "file with the analysis system prompt")

	return cmd
}

// loadCSVFiles reads every csv file of a directory into memory, keyed by file
// name. A missing directory yields an empty map.
func loadCSVFiles(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading csv directory: %w", err)
	}

	files := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".csv" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		files[entry.Name()] = string(data)
	}

	return files, nil
}

// buildGithubClient assembles the http middleware chain and the github
// client: client -> retry -> optional bolt response cache -> rate limiters.
func buildGithubClient(conf Config, l *logrus.Logger) (app.GithubClient, func(), error) {
	httpClient := &http.Client{
		Timeout: conf.HTTPTimeout,
	}

	var doer transport.HTTPDoer = transport.NewRetryDoer(httpClient, httpRetries, httpRetryBackoff)

	closeFn := func() {}
	if conf.HTTPCachePath != "" {
		db, err := database.NewBoltKVStore(conf.HTTPCachePath, "responses")
		if err != nil {
			return nil, nil, fmt.Errorf("opening response cache: %w", err)
		}
		doer = transport.NewCacheDoer(doer, db, conf.HTTPCacheTTL, l.WithField("component", "httpCache"))
		closeFn = func() {
			if err := db.Close(); err != nil {
				l.Warnf("closing response cache: %v", err)
			}
		}
	}

	standardRate, searchRate := conf.StandardRateLimit, conf.SearchRateLimit
	if conf.DisableSleep {
		standardRate, searchRate = math.Inf(1), math.Inf(1)
	}

	client := github.NewClient(
		limiter.NewHTTPDoer(doer, standardRate),
		limiter.NewHTTPDoer(doer, searchRate),
		conf.GithubAPIAddress,
		conf.GithubToken,
		conf.GithubOrg,
		l,
	)

	cached, err := github.NewCachedClient(client, conf.RepositoryCacheSize, conf.RepositoryCacheTTL)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("creating cached github client: %w", err)
	}

	return cached, closeFn, nil
}
