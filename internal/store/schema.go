package store

import (
	"context"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names shared by the repositories.
const (
	tableProfiles    = "profiles"
	tableCompletions = "completions"
	tableBadges      = "badges"
	tableAccounts    = "accounts"
	tableSessions    = "auth_sessions"
	tableDiscussions = "discussions"
	tableComments    = "comments"
	tableLikes       = "discussion_likes"
)

var (
	profileColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString},
		{Name: "username", Type: field.TypeString},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "streak_days", Type: field.TypeInt, Default: 0},
		{Name: "last_activity_date", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeString},
	}
	profilesTable = &schema.Table{
		Name:       tableProfiles,
		Columns:    profileColumns,
		PrimaryKey: []*schema.Column{profileColumns[0]},
	}

	completionColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString},
		{Name: "article_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "answers", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeString},
	}
	completionsTable = &schema.Table{
		Name:       tableCompletions,
		Columns:    completionColumns,
		PrimaryKey: []*schema.Column{completionColumns[0], completionColumns[1]},
		Indexes: []*schema.Index{
			{Name: "completion_user_completed_at", Columns: []*schema.Column{completionColumns[0], completionColumns[4]}},
		},
	}

	badgeColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString},
		{Name: "badge_type", Type: field.TypeString},
		{Name: "earned_at", Type: field.TypeString},
	}
	badgesTable = &schema.Table{
		Name:       tableBadges,
		Columns:    badgeColumns,
		PrimaryKey: []*schema.Column{badgeColumns[0], badgeColumns[1]},
	}

	accountColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeString},
	}
	accountsTable = &schema.Table{
		Name:       tableAccounts,
		Columns:    accountColumns,
		PrimaryKey: []*schema.Column{accountColumns[0]},
	}

	sessionColumns = []*schema.Column{
		{Name: "token_hash", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeString},
	}
	sessionsTable = &schema.Table{
		Name:       tableSessions,
		Columns:    sessionColumns,
		PrimaryKey: []*schema.Column{sessionColumns[0]},
		Indexes: []*schema.Index{
			{Name: "auth_session_user", Columns: []*schema.Column{sessionColumns[1]}},
		},
	}

	discussionColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: "general"},
		{Name: "likes_count", Type: field.TypeInt, Default: 0},
		{Name: "comments_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeString},
	}
	discussionsTable = &schema.Table{
		Name:       tableDiscussions,
		Columns:    discussionColumns,
		PrimaryKey: []*schema.Column{discussionColumns[0]},
		Indexes: []*schema.Index{
			{Name: "discussion_created_at", Columns: []*schema.Column{discussionColumns[7]}},
			{Name: "discussion_user", Columns: []*schema.Column{discussionColumns[1]}},
		},
	}

	commentColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "discussion_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeString},
	}
	commentsTable = &schema.Table{
		Name:       tableComments,
		Columns:    commentColumns,
		PrimaryKey: []*schema.Column{commentColumns[0]},
		Indexes: []*schema.Index{
			{Name: "comment_discussion_created_at", Columns: []*schema.Column{commentColumns[1], commentColumns[4]}},
		},
	}

	likeColumns = []*schema.Column{
		{Name: "discussion_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
	}
	likesTable = &schema.Table{
		Name:       tableLikes,
		Columns:    likeColumns,
		PrimaryKey: []*schema.Column{likeColumns[0], likeColumns[1]},
	}

	tables = []*schema.Table{
		profilesTable,
		completionsTable,
		badgesTable,
		accountsTable,
		sessionsTable,
		discussionsTable,
		commentsTable,
		likesTable,
	}
)

// migrate creates or upgrades every table to the current schema.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}
