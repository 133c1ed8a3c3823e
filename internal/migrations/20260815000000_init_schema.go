package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/murmur-im/groupuser/internal/db/models"
)

func init() {
	Migrations.MustRegister(up_20260815000000, down_20260815000000)
}

// up_20260815000000 creates the groups and group_members tables.
func up_20260815000000(ctx context.Context, db *bun.DB) error {
	fmt.Print(" [up] creating groups table...")
	_, err := db.NewCreateTable().
		Model((*models.Group)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create groups table: %w", err)
	}
	fmt.Println(" OK")

	fmt.Print(" [up] creating group_members table...")
	q := db.NewCreateTable().
		Model((*models.GroupMember)(nil)).
		IfNotExists()

	// SQLite only supports FK clauses at table creation.
	if IsSQLite(db) {
		q = q.ForeignKey(`(group_id) REFERENCES groups(id) ON DELETE CASCADE`)
	}
	if _, err := q.Exec(ctx); err != nil {
		return fmt.Errorf("create group_members table: %w", err)
	}
	if IsPostgreSQL(db) {
		_, err = db.Exec(`
			ALTER TABLE group_members
			ADD CONSTRAINT fk_group_members_group
			FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE
		`)
		if err != nil {
			return fmt.Errorf("add group_members FK: %w", err)
		}
	}

	// One membership row per (group, user); uid index backs GetGroupsByUID.
	_, err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_group_members_group_uid
		ON group_members(group_id, uid)
	`)
	if err != nil {
		return fmt.Errorf("create unique index on (group_id, uid): %w", err)
	}
	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_group_members_uid ON group_members(uid)`)
	if err != nil {
		return fmt.Errorf("create index on uid: %w", err)
	}
	fmt.Println(" OK")

	return nil
}

// down_20260815000000 drops the schema.
func down_20260815000000(ctx context.Context, db *bun.DB) error {
	fmt.Print(" [down] dropping group_members table...")
	if _, err := db.NewDropTable().Model((*models.GroupMember)(nil)).IfExists().Exec(ctx); err != nil {
		return fmt.Errorf("drop group_members table: %w", err)
	}
	fmt.Println(" OK")

	fmt.Print(" [down] dropping groups table...")
	if _, err := db.NewDropTable().Model((*models.Group)(nil)).IfExists().Exec(ctx); err != nil {
		return fmt.Errorf("drop groups table: %w", err)
	}
	fmt.Println(" OK")

	return nil
}
