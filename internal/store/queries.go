package store

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrQuery    = errors.New("query error")
)

const prefFirstTime = "first_time"

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

type UserKey struct {
	KeyID     int64
	Name      string
	Email     string
	CreatedOn time.Time
}

// UserID is the familiar "name <email>" form.
func (k UserKey) UserID() string {
	if k.Email == "" {
		return k.Name
	}

	return k.Name + " <" + k.Email + ">"
}

type APIApp struct {
	PackageName string
	Name        string
	CreatedOn   time.Time
}

func (q *Queries) GetPreference(ctx context.Context, key string) (string, error) {
	var value string
	if err := q.db.QueryRowContext(ctx, `SELECT value FROM preference WHERE key = ?`, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}

		return "", errors.Join(err, ErrQuery)
	}

	return value, nil
}

func (q *Queries) SetPreference(ctx context.Context, key string, value string) error {
	if _, err := q.db.ExecContext(ctx,
		`INSERT INTO preference (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value); err != nil {
		return errors.Join(err, ErrQuery)
	}

	return nil
}

// IsFirstTime reports whether the first run setup has not been completed yet.
func (q *Queries) IsFirstTime(ctx context.Context) (bool, error) {
	value, err := q.GetPreference(ctx, prefFirstTime)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return true, nil
		}

		return false, err
	}

	firstTime, errParse := strconv.ParseBool(value)
	if errParse != nil {
		return true, nil //nolint:nilerr
	}

	return firstTime, nil
}

func (q *Queries) SetFirstTime(ctx context.Context, firstTime bool) error {
	return q.SetPreference(ctx, prefFirstTime, strconv.FormatBool(firstTime))
}

// LoadUIState returns every saved ui state entry.
func (q *Queries) LoadUIState(ctx context.Context) (map[string]string, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT key, value FROM ui_state`)
	if err != nil {
		return nil, errors.Join(err, ErrQuery)
	}
	defer rows.Close()

	state := map[string]string{}
	for rows.Next() {
		var key, value string
		if errScan := rows.Scan(&key, &value); errScan != nil {
			return nil, errors.Join(errScan, ErrQuery)
		}
		state[key] = value
	}

	if errRows := rows.Err(); errRows != nil {
		return nil, errors.Join(errRows, ErrQuery)
	}

	return state, nil
}

// SaveUIState upserts the given entries. Entries not present in state are kept.
func (q *Queries) SaveUIState(ctx context.Context, state map[string]string) error {
	for key, value := range state {
		if _, err := q.db.ExecContext(ctx,
			`INSERT INTO ui_state (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
			key, value); err != nil {
			return errors.Join(err, ErrQuery)
		}
	}

	return nil
}

type CreateKeyParams struct {
	Name      string
	Email     string
	CreatedOn time.Time
}

func (q *Queries) CreateKey(ctx context.Context, arg CreateKeyParams) (UserKey, error) {
	result, err := q.db.ExecContext(ctx,
		`INSERT INTO user_key (name, email, created_on) VALUES (?, ?, ?)`,
		arg.Name, arg.Email, arg.CreatedOn.Unix())
	if err != nil {
		return UserKey{}, errors.Join(err, ErrQuery)
	}

	keyID, errID := result.LastInsertId()
	if errID != nil {
		return UserKey{}, errors.Join(errID, ErrQuery)
	}

	return UserKey{KeyID: keyID, Name: arg.Name, Email: arg.Email, CreatedOn: time.Unix(arg.CreatedOn.Unix(), 0)}, nil
}

func (q *Queries) ListKeys(ctx context.Context) ([]UserKey, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT key_id, name, email, created_on FROM user_key ORDER BY name, key_id`)
	if err != nil {
		return nil, errors.Join(err, ErrQuery)
	}
	defer rows.Close()

	var keys []UserKey
	for rows.Next() {
		var (
			key     UserKey
			created int64
		)
		if errScan := rows.Scan(&key.KeyID, &key.Name, &key.Email, &created); errScan != nil {
			return nil, errors.Join(errScan, ErrQuery)
		}
		key.CreatedOn = time.Unix(created, 0)
		keys = append(keys, key)
	}

	if errRows := rows.Err(); errRows != nil {
		return nil, errors.Join(errRows, ErrQuery)
	}

	return keys, nil
}

type RegisterAppParams struct {
	PackageName string
	Name        string
	CreatedOn   time.Time
}

func (q *Queries) RegisterApp(ctx context.Context, arg RegisterAppParams) error {
	if _, err := q.db.ExecContext(ctx,
		`INSERT INTO api_app (package_name, name, created_on) VALUES (?, ?, ?)
		 ON CONFLICT (package_name) DO UPDATE SET name = excluded.name`,
		arg.PackageName, arg.Name, arg.CreatedOn.Unix()); err != nil {
		return errors.Join(err, ErrQuery)
	}

	return nil
}

func (q *Queries) ListApps(ctx context.Context) ([]APIApp, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT package_name, name, created_on FROM api_app ORDER BY name`)
	if err != nil {
		return nil, errors.Join(err, ErrQuery)
	}
	defer rows.Close()

	var apps []APIApp
	for rows.Next() {
		var (
			app     APIApp
			created int64
		)
		if errScan := rows.Scan(&app.PackageName, &app.Name, &created); errScan != nil {
			return nil, errors.Join(errScan, ErrQuery)
		}
		app.CreatedOn = time.Unix(created, 0)
		apps = append(apps, app)
	}

	if errRows := rows.Err(); errRows != nil {
		return nil, errors.Join(errRows, ErrQuery)
	}

	return apps, nil
}
