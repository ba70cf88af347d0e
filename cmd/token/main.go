package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
)

func newRootCmd() *cobra.Command {
	var (
		userID string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token de acesso ao dashboard assinado com AUTH_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			token, err := authenticating.NewService(cfg).GenerateToken(userID, role, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "identificador do usuário")
	cmd.Flags().StringVar(&role, "role", domain.RoleViewer, "papel do usuário (admin ou viewer)")
	cmd.Flags().DurationVar(&ttl, "ttl", authenticating.DefaultTokenTTL, "validade do token")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func main() {
	logrus.SetLevel(logrus.WarnLevel)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
