package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/posts-stats-api/internal/app"
	"github.com/vfg2006/posts-stats-api/internal/config"
	"github.com/vfg2006/posts-stats-api/internal/domain"
	"github.com/vfg2006/posts-stats-api/internal/usecases/analyzing"
	"github.com/vfg2006/posts-stats-api/pkg/log"
	"github.com/vfg2006/posts-stats-api/pkg/utils"
)

var sections = []string{"all", "tiers", "averages", "standouts", "recent"}

type reportOptions struct {
	window   int
	section  string
	asOf     string
	page     int
	pageSize int
}

func reportCmd() *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Monta o dashboard a partir do armazenamento configurado e imprime uma seção em JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Logs vão para stderr para não misturar com o JSON
			logrus.SetOutput(os.Stderr)

			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			service, err := app.New(ctx, cfg, log.L)
			if err != nil {
				return err
			}
			defer service.Close()

			return runReport(ctx, service.Analyzer, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&opts.window, "window", 0, "janela de recência em dias: 7, 14, 28 ou 90 (padrão: DASHBOARD_DEFAULT_WINDOW_DAYS)")
	cmd.Flags().StringVar(&opts.section, "section", "all", "seção a imprimir: all, tiers, averages, standouts ou recent")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "data de referência no formato YYYY-MM-DD (padrão: hoje)")
	cmd.Flags().IntVar(&opts.page, "page", 1, "página de cada faixa de seguidores")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "posts por página (padrão: DASHBOARD_DEFAULT_PAGE_SIZE)")

	return cmd
}

func runReport(ctx context.Context, analyzer analyzing.Analyzer, opts reportOptions, out io.Writer) error {
	if !slices.Contains(sections, opts.section) {
		return fmt.Errorf("seção inválida %q, use uma de %v", opts.section, sections)
	}

	filters := &domain.DashboardFilters{
		WindowDays: opts.window,
		Page:       opts.page,
		PageSize:   opts.pageSize,
	}

	if opts.asOf != "" {
		asOf, err := utils.ParseDate(opts.asOf)
		if err != nil {
			return fmt.Errorf("erro ao interpretar --as-of: %w", err)
		}
		filters.AsOf = asOf
	}

	dashboard, err := analyzer.GetDashboard(ctx, filters)
	if err != nil {
		return fmt.Errorf("erro ao montar o dashboard: %w", err)
	}

	for platform, diagnostic := range dashboard.Errors {
		logrus.WithField("platform", platform).Warn(diagnostic)
	}

	_, err = fmt.Fprintln(out, utils.PrettyJson(selectSection(dashboard, opts.section)))
	return err
}

func selectSection(dashboard *domain.Dashboard, section string) any {
	switch section {
	case "tiers":
		tiers := make(map[domain.Platform][]domain.TierGroup, len(dashboard.Platforms))
		for _, stats := range dashboard.Platforms {
			tiers[stats.Platform] = stats.Tiers
		}
		return tiers
	case "averages":
		averages := make(map[domain.Platform]map[string]domain.ArtistPlatformAverage, len(dashboard.Platforms))
		for _, stats := range dashboard.Platforms {
			averages[stats.Platform] = stats.Averages
		}
		return averages
	case "standouts":
		return dashboard.Standouts
	case "recent":
		return dashboard.Recent
	}
	return dashboard
}
