package roundmigrations

import (
	"context"
	"fmt"

	rounddb "github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating trips table...")

		_, err := db.NewCreateTable().Model((*rounddb.Trip)(nil)).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create trips table: %w", err)
		}

		fmt.Println("Trips table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Rolling back trips table...")

		_, err := db.NewDropTable().Model((*rounddb.Trip)(nil)).IfExists().Cascade().Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop trips table: %w", err)
		}

		fmt.Println("Trips table dropped successfully!")
		return nil
	})
}
