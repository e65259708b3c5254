package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/pagemark/pagemark/models"
)

const (
	createUser = `INSERT INTO users (email, name, password_hash, oauth_subject)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, name, password_hash, oauth_subject, banned, created_at;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, oauth_subject, banned, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, name, password_hash, oauth_subject, banned, created_at
    FROM users
    WHERE user_id = $1;`

	listUsers = `SELECT user_id, email, name, password_hash, oauth_subject, banned, created_at
    FROM users
    ORDER BY user_id;`

	setUserBanned = `UPDATE users
    SET banned = $2
    WHERE user_id = $1;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`

	createPage = `INSERT INTO pages (owner_id, name, content)
    VALUES ($1, $2, $3)
    RETURNING page_id, owner_id, name, content, public_share_id, download_allowed, created_at, updated_at;`

	getPage = `SELECT page_id, owner_id, name, content, public_share_id, download_allowed, created_at, updated_at
    FROM pages
    WHERE page_id = $1;`

	getPageByShareID = `SELECT page_id, owner_id, name, content, public_share_id, download_allowed, created_at, updated_at
    FROM pages
    WHERE public_share_id = $1;`

	listPagesByUser = `SELECT DISTINCT p.page_id, p.owner_id, p.name, p.content, p.public_share_id, p.download_allowed, p.created_at, p.updated_at
    FROM pages p
    LEFT JOIN page_shares s ON s.page_id = p.page_id
    WHERE p.owner_id = $1 OR s.user_id = $1
    ORDER BY p.page_id;`

	upsertPage = `INSERT INTO pages (page_id, owner_id, name, content)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (page_id) DO UPDATE
    SET name = EXCLUDED.name, content = EXCLUDED.content, updated_at = NOW()
    RETURNING page_id, updated_at;`

	// inserting an explicit page_id does not advance the serial sequence;
	// keep it at the table maximum so createPage never collides
	syncPageIDSequence = `SELECT setval(pg_get_serial_sequence('pages', 'page_id'),
    (SELECT GREATEST(COALESCE(MAX(page_id), 1), 1) FROM pages));`

	deletePage = `DELETE FROM pages
    WHERE page_id = $1 AND owner_id = $2;`

	sharePage = `INSERT INTO page_shares (page_id, user_id)
    VALUES ($1, $2)
    ON CONFLICT (page_id, user_id) DO NOTHING;`

	unsharePage = `DELETE FROM page_shares
    WHERE page_id = $1 AND user_id = $2;`

	getSharedUserIDs = `SELECT user_id
    FROM page_shares
    WHERE page_id = $1
    ORDER BY user_id;`

	createTask = `INSERT INTO tasks (owner_id, title, description, deadline)
    VALUES ($1, $2, $3, $4)
    RETURNING task_id, owner_id, title, description, deadline, done, reminder_sent, created_at, updated_at;`

	getTask = `SELECT task_id, owner_id, title, description, deadline, done, reminder_sent, created_at, updated_at
    FROM tasks
    WHERE task_id = $1 AND owner_id = $2;`

	listTasksByOwner = `SELECT task_id, owner_id, title, description, deadline, done, reminder_sent, created_at, updated_at
    FROM tasks
    WHERE owner_id = $1
    ORDER BY deadline;`

	updateTask = `UPDATE tasks
    SET title = $3, description = $4, deadline = $5, done = $6, updated_at = NOW()
    WHERE task_id = $1 AND owner_id = $2;`

	deleteTask = `DELETE FROM tasks
    WHERE task_id = $1 AND owner_id = $2;`

	listDueTasks = `SELECT t.task_id, t.owner_id, t.title, t.description, t.deadline, t.done, t.reminder_sent, t.created_at, t.updated_at, u.email, u.name
    FROM tasks t
    JOIN users u ON u.user_id = t.owner_id
    WHERE NOT t.done AND NOT t.reminder_sent AND t.deadline <= $1 AND NOT u.banned
    ORDER BY t.deadline;`

	markReminderSent = `UPDATE tasks
    SET reminder_sent = TRUE, updated_at = NOW()
    WHERE task_id = $1;`

	createImage = `INSERT INTO images (key, page_id, owner_id)
    VALUES ($1, $2, $3);`

	markImage = `UPDATE images
    SET marked = TRUE
    WHERE key = $1 AND owner_id = $2;`

	listMarkedImages = `SELECT key
    FROM images
    WHERE marked
    ORDER BY uploaded_at
    LIMIT $1;`

	// an image is orphaned when no live page content references its key
	listOrphanedImages = `SELECT i.key
    FROM images i
    WHERE NOT EXISTS (
        SELECT 1 FROM pages p
        WHERE p.page_id = i.page_id AND p.content LIKE '%' || i.key || '%'
    )
    ORDER BY i.uploaded_at
    LIMIT $1;`

	deleteImages = `DELETE FROM images
    WHERE key = ANY($1);`
)

// job-status store queries (sqlite dialect)
const (
	createJobStatusTable = `CREATE TABLE IF NOT EXISTS job_status (
        job_id     TEXT PRIMARY KEY,
        type       TEXT NOT NULL,
        status     TEXT NOT NULL,
        result     TEXT NOT NULL DEFAULT '',
        error      TEXT NOT NULL DEFAULT '',
        created_at TIMESTAMP NOT NULL,
        updated_at TIMESTAMP NOT NULL
    );`

	// last write wins: a repeated save for the same job id overwrites the record
	saveJobStatus = `INSERT INTO job_status (job_id, type, status, result, error, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    ON CONFLICT (job_id) DO UPDATE
    SET status = excluded.status, result = excluded.result, error = excluded.error, updated_at = excluded.updated_at;`

	getJobStatus = `SELECT job_id, type, status, result, error, created_at, updated_at
    FROM job_status
    WHERE job_id = $1;`

	listRecentJobs = `SELECT job_id, type, status, result, error, created_at, updated_at
    FROM job_status
    ORDER BY updated_at DESC
    LIMIT $1;`
)

// buildPageUpdateQuery dynamically builds an UPDATE for the non-nil fields of
// a partial page update. A cleared PublicShareID (empty string) is written as
// NULL so the share link stops resolving.
func (p *pageRepository) buildPageUpdateQuery(update models.PageUpdate) (string, []any, error) {
	builder := sq.Update("pages").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"page_id": update.PageID, "owner_id": update.OwnerID}).
		PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.DownloadAllowed != nil {
		builder = builder.Set("download_allowed", *update.DownloadAllowed)
	}
	if update.PublicShareID != nil {
		if *update.PublicShareID == "" {
			builder = builder.Set("public_share_id", nil)
		} else {
			builder = builder.Set("public_share_id", *update.PublicShareID)
		}
	}

	return builder.ToSql()
}
