package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yungbote/abcd-backend/internal/platform/envutil"
	"github.com/yungbote/abcd-backend/internal/services"
)

var (
	tokenSubject string
	tokenRole    string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for admin routes",
	Long:  "Token signs an HS256 token with JWT_SECRET and JWT_ISSUER for local use.",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "token subject")
	tokenCmd.Flags().StringVar(&tokenRole, "role", services.RoleAdmin, "role claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("subject")
}

func runToken(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	auth, err := services.NewAuthService(log, envutil.String("JWT_SECRET", ""), envutil.String("JWT_ISSUER", "abcd"), tokenTTL)
	if err != nil {
		return err
	}
	token, err := auth.IssueToken(tokenSubject, tokenRole, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
