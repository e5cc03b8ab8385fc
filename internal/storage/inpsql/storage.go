// Package inpsql provides data types and methods for mirroring collections into PSQL DB storage.
package inpsql

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib"
	"go.uber.org/zap"

	"github.com/dkazarov/dk_go_stream_alerts/internal/config"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
	"github.com/dkazarov/dk_go_stream_alerts/internal/storage"
	storageErrors "github.com/dkazarov/dk_go_stream_alerts/internal/storage/errors"
)

// Check interface implementation explicitly
var (
	_ storage.AlertStorage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu  sync.Mutex
	Cfg *config.StorageConfig
	DB  *sql.DB
	log *zap.Logger
}

// InitStorage initializes a Storage object, sets its attributes and starts a connection closer listener.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.StorageConfig, log *zap.Logger) (*Storage, error) {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	st := Storage{
		Cfg: cfg,
		DB:  db,
		log: log,
	}
	if err = st.createTables(ctx); err != nil {
		return nil, err
	}
	// use sync.WaitGroup to prevent goroutine premature termination when main exits
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := st.DB.Close(); err != nil {
			st.log.Error("PSQL DB connection closing failed", zap.Error(err))
			return
		}
		st.log.Info("PSQL DB connection closed successfully")
	}()
	return &st, nil
}

// ReplaceServices resynchronizes the mirrored service link collection wholesale.
func (s *Storage) ReplaceServices(ctx context.Context, links []modelalert.ServiceLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	defer tx.Rollback()
	if _, err = tx.ExecContext(ctx, "DELETE FROM services"); err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	stmt, err := tx.PrepareContext(ctx, insertServiceQuery)
	if err != nil {
		return &storageErrors.StatementPSQLError{Err: err}
	}
	defer stmt.Close()
	for _, link := range links {
		if _, err = stmt.ExecContext(ctx, link.ID, link.State, link.TwitchUser, link.ClientID, link.ClientSecret,
			link.Wallet, link.ServiceName, link.Authenticated, link.Onchain, link.RedirectURI, link.AuthURL, link.DisplayURL); err != nil {
			return &storageErrors.ExecutionPSQLError{Err: err}
		}
	}
	if err = tx.Commit(); err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	s.log.Info("replaced mirrored service links", zap.Int("count", len(links)))
	return nil
}

// AppendService appends one service link to the mirrored collection.
func (s *Storage) AppendService(ctx context.Context, link modelalert.ServiceLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.DB.ExecContext(ctx, insertServiceQuery, link.ID, link.State, link.TwitchUser, link.ClientID,
		link.ClientSecret, link.Wallet, link.ServiceName, link.Authenticated, link.Onchain, link.RedirectURI,
		link.AuthURL, link.DisplayURL)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return &storageErrors.AlreadyExistsError{ID: link.ID, Err: err}
		}
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	return nil
}

// GetService returns one mirrored service link by its identifier.
func (s *Storage) GetService(ctx context.Context, serviceID string) (modelalert.ServiceLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.DB.QueryRowContext(ctx, selectServiceQuery+" WHERE id = $1", serviceID)
	link, err := scanService(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return modelalert.ServiceLink{}, &storageErrors.NotFoundError{ID: serviceID, Err: err}
		}
		return modelalert.ServiceLink{}, &storageErrors.ScanningPSQLError{Err: err}
	}
	return link, nil
}

// Services returns all mirrored service links in collection order.
func (s *Storage) Services(ctx context.Context) ([]modelalert.ServiceLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.DB.QueryContext(ctx, selectServiceQuery+" ORDER BY seq")
	if err != nil {
		return nil, &storageErrors.ExecutionPSQLError{Err: err}
	}
	defer rows.Close()
	var links []modelalert.ServiceLink
	for rows.Next() {
		link, scanErr := scanService(rows)
		if scanErr != nil {
			return nil, &storageErrors.ScanningPSQLError{Err: scanErr}
		}
		links = append(links, link)
	}
	if err = rows.Err(); err != nil {
		return nil, &storageErrors.ScanningPSQLError{Err: err}
	}
	return links, nil
}

// RemoveService removes one mirrored service link, removal of an absent id is a no-op.
func (s *Storage) RemoveService(ctx context.Context, serviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.DB.ExecContext(ctx, "DELETE FROM services WHERE id = $1", serviceID); err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	return nil
}

// ReplaceDonations resynchronizes the mirrored donation collection wholesale.
func (s *Storage) ReplaceDonations(ctx context.Context, donations []modelalert.Donation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	defer tx.Rollback()
	if _, err = tx.ExecContext(ctx, "DELETE FROM donations"); err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	stmt, err := tx.PrepareContext(ctx, insertDonationQuery)
	if err != nil {
		return &storageErrors.StatementPSQLError{Err: err}
	}
	defer stmt.Close()
	for _, donation := range donations {
		if _, err = stmt.ExecContext(ctx, donation.ID, donation.Wallet, donation.Name, donation.Message,
			donation.CurCode, donation.Sats, donation.Amount, donation.Service, donation.Posted, donation.Time,
			donation.Date, donation.FormattedSats); err != nil {
			return &storageErrors.ExecutionPSQLError{Err: err}
		}
	}
	if err = tx.Commit(); err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	s.log.Info("replaced mirrored donations", zap.Int("count", len(donations)))
	return nil
}

// GetDonation returns one mirrored donation by its identifier.
func (s *Storage) GetDonation(ctx context.Context, donationID string) (modelalert.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.DB.QueryRowContext(ctx, selectDonationQuery+" WHERE id = $1", donationID)
	donation, err := scanDonation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return modelalert.Donation{}, &storageErrors.NotFoundError{ID: donationID, Err: err}
		}
		return modelalert.Donation{}, &storageErrors.ScanningPSQLError{Err: err}
	}
	return donation, nil
}

// Donations returns all mirrored donations in collection order.
func (s *Storage) Donations(ctx context.Context) ([]modelalert.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.DB.QueryContext(ctx, selectDonationQuery+" ORDER BY seq")
	if err != nil {
		return nil, &storageErrors.ExecutionPSQLError{Err: err}
	}
	defer rows.Close()
	var donations []modelalert.Donation
	for rows.Next() {
		donation, scanErr := scanDonation(rows)
		if scanErr != nil {
			return nil, &storageErrors.ScanningPSQLError{Err: scanErr}
		}
		donations = append(donations, donation)
	}
	if err = rows.Err(); err != nil {
		return nil, &storageErrors.ScanningPSQLError{Err: err}
	}
	return donations, nil
}

// RemoveDonation removes one mirrored donation, removal of an absent id is a no-op.
func (s *Storage) RemoveDonation(ctx context.Context, donationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.DB.ExecContext(ctx, "DELETE FROM donations WHERE id = $1", donationID); err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	return nil
}

// ReplaceWalletLinks resynchronizes the mirrored linked-wallet id collection wholesale.
func (s *Storage) ReplaceWalletLinks(ctx context.Context, linkIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	defer tx.Rollback()
	if _, err = tx.ExecContext(ctx, "DELETE FROM wallet_links"); err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO wallet_links (id) VALUES ($1)")
	if err != nil {
		return &storageErrors.StatementPSQLError{Err: err}
	}
	defer stmt.Close()
	for _, linkID := range linkIDs {
		if _, err = stmt.ExecContext(ctx, linkID); err != nil {
			return &storageErrors.ExecutionPSQLError{Err: err}
		}
	}
	if err = tx.Commit(); err != nil {
		return &storageErrors.ExecutionPSQLError{Err: err}
	}
	return nil
}

// WalletLinks returns all mirrored linked-wallet ids in collection order.
func (s *Storage) WalletLinks(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.DB.QueryContext(ctx, "SELECT id FROM wallet_links ORDER BY seq")
	if err != nil {
		return nil, &storageErrors.ExecutionPSQLError{Err: err}
	}
	defer rows.Close()
	var linkIDs []string
	for rows.Next() {
		var linkID string
		if err = rows.Scan(&linkID); err != nil {
			return nil, &storageErrors.ScanningPSQLError{Err: err}
		}
		linkIDs = append(linkIDs, linkID)
	}
	if err = rows.Err(); err != nil {
		return nil, &storageErrors.ScanningPSQLError{Err: err}
	}
	return linkIDs, nil
}

// CloseDB closes the PSQL DB connection.
func (s *Storage) CloseDB() error {
	return s.DB.Close()
}

const insertServiceQuery = `INSERT INTO services (id, state, twitchuser, client_id, client_secret, wallet,
	servicename, authenticated, onchain, redirect_uri, auth_url, display_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const selectServiceQuery = `SELECT id, state, twitchuser, client_id, client_secret, wallet, servicename,
	authenticated, onchain, redirect_uri, auth_url, display_url FROM services`

const insertDonationQuery = `INSERT INTO donations (id, wallet, name, message, cur_code, sats, amount, service,
	posted, time_ms, date, fsat) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const selectDonationQuery = `SELECT id, wallet, name, message, cur_code, sats, amount, service, posted, time_ms,
	date, fsat FROM donations`

// scanner covers both *sql.Row and *sql.Rows for single-entity scanning.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanService(sc scanner) (modelalert.ServiceLink, error) {
	var link modelalert.ServiceLink
	err := sc.Scan(&link.ID, &link.State, &link.TwitchUser, &link.ClientID, &link.ClientSecret, &link.Wallet,
		&link.ServiceName, &link.Authenticated, &link.Onchain, &link.RedirectURI, &link.AuthURL, &link.DisplayURL)
	return link, err
}

func scanDonation(sc scanner) (modelalert.Donation, error) {
	var donation modelalert.Donation
	err := sc.Scan(&donation.ID, &donation.Wallet, &donation.Name, &donation.Message, &donation.CurCode,
		&donation.Sats, &donation.Amount, &donation.Service, &donation.Posted, &donation.Time, &donation.Date,
		&donation.FormattedSats)
	return donation, err
}

// createTables creates tables for PSQL DB storage if not exist.
func (s *Storage) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS services (
			seq bigserial not null,
			id text not null unique,
			state text not null,
			twitchuser text not null,
			client_id text not null,
			client_secret text not null,
			wallet text not null,
			servicename text not null,
			authenticated boolean not null,
			onchain text not null,
			redirect_uri text not null,
			auth_url text not null,
			display_url text not null
		);`,
		`CREATE TABLE IF NOT EXISTS donations (
			seq bigserial not null,
			id text not null unique,
			wallet text not null,
			name text not null,
			message text not null,
			cur_code text not null,
			sats bigint not null,
			amount double precision not null,
			service text not null,
			posted boolean not null,
			time_ms bigint not null,
			date text not null,
			fsat text not null
		);`,
		`CREATE TABLE IF NOT EXISTS wallet_links (
			seq bigserial not null,
			id text not null unique
		);`,
	}
	for _, query := range queries {
		if _, err := s.DB.ExecContext(ctx, query); err != nil {
			return &storageErrors.ExecutionPSQLError{Err: err}
		}
	}
	return nil
}
