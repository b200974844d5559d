package cmd

import (
	"fmt"

	"github.com/SundayYogurt/social_user_service/internal/api"
	"github.com/SundayYogurt/social_user_service/internal/repository"
	"github.com/SundayYogurt/social_user_service/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedUserID string
	seedCount  int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load development data",
}

var seedFriendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "Create users that are already friends with --user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedUserID == "" {
			return fmt.Errorf("--user is required")
		}
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		db, err := api.OpenDatabase(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		svc := services.NewFriendRequestService(repository.NewStore(db), log)
		ids, err := svc.MockFriends(cmd.Context(), seedUserID, seedCount)
		if err != nil {
			return err
		}
		log.Info("friends seeded", zap.String("user_id", seedUserID), zap.Strings("friend_ids", ids))
		return nil
	},
}

func init() {
	seedFriendsCmd.Flags().StringVarP(&seedUserID, "user", "u", "", "id of the user to befriend")
	seedFriendsCmd.Flags().IntVarP(&seedCount, "count", "n", 10, "number of friends to create")
	seedCmd.AddCommand(seedFriendsCmd)
	rootCmd.AddCommand(seedCmd)
}
