// Package toml caches the last fetched account snapshot in a TOML file so
// commands can show something useful without hitting the backend.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/ports"
)

const (
	configName         = "config"
	configType         = "toml"
	snapshotPathKey    = "snapshot.path"
	snapshotFileMode   = 0o600
	snapshotDirMode    = 0o700
	snapshotConfigDir  = ".pfob"
	snapshotConfigFile = "snapshot.toml"
	tempFilePattern    = ".snapshot-*.toml.tmp"
)

type Repository struct {
	snapshotPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SnapshotRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, snapshotConfigDir, snapshotConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, snapshotConfigDir))
	cfg.SetDefault(snapshotPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	snapshotPath := cfg.GetString(snapshotPathKey)
	if snapshotPath == "" {
		return nil, errors.New("snapshot path is empty")
	}
	snapshotPath, err = normalizeSnapshotPath(snapshotPath)
	if err != nil {
		return nil, err
	}

	return &Repository{snapshotPath: snapshotPath, mu: lockForPath(snapshotPath)}, nil
}

func (r *Repository) Load(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.snapshotPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Snapshot{}, domain.ErrSnapshotNotFound
		}
		return domain.Snapshot{}, fmt.Errorf("read snapshot file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.Snapshot{}, err
	}

	return fromSchema(file), nil
}

func (r *Repository) Save(ctx context.Context, snapshot domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toSchema(snapshot))
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.snapshotPath), snapshotDirMode); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode snapshot file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.snapshotPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp snapshot file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp snapshot file: %w", err)
	}

	if err := tempFile.Chmod(snapshotFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp snapshot file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp snapshot file: %w", err)
	}

	if err := os.Rename(tempName, r.snapshotPath); err != nil {
		return fmt.Errorf("replace snapshot file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.snapshotPath, snapshotFileMode); err != nil {
		return fmt.Errorf("chmod snapshot file: %w", err)
	}

	return nil
}

func normalizeSnapshotPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve snapshot path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(snapshot domain.Snapshot) fileSchema {
	file := fileSchema{SyncedAt: formatTime(snapshot.SyncedAt)}

	for _, account := range snapshot.Linked {
		encoded := accountSchema{
			ID:            int64(account.ID),
			InstitutionID: account.InstitutionID,
			BankName:      account.BankName,
			AccountNumber: account.AccountNumber,
			MaskedAccount: account.MaskedAccount,
			OwnerName:     account.OwnerName,
			Balance:       account.Balance,
			ESGPoint:      account.ESGPoint,
		}
		for _, goal := range account.Goals {
			encoded.Goals = append(encoded.Goals, goalSchema{
				ID:            int64(goal.ID),
				BankAccountID: int64(goal.BankAccountID),
				Purpose:       goal.Purpose,
				LimitAmount:   goal.LimitAmount,
				Cycle:         string(goal.Cycle),
				Spent:         goal.Spent,
			})
		}
		file.Linked = append(file.Linked, encoded)
	}

	for _, suggestion := range snapshot.Suggested {
		file.Suggested = append(file.Suggested, suggestedAccountSchema{
			InstitutionID: suggestion.InstitutionID,
			AccountNumber: suggestion.AccountNumber,
			BankName:      suggestion.BankName,
			OwnerName:     suggestion.OwnerName,
		})
	}

	for _, recipient := range snapshot.Recipients {
		file.Recipients = append(file.Recipients, recipientSchema{
			ID:            int64(recipient.ID),
			OwnerName:     recipient.OwnerName,
			BankName:      recipient.BankName,
			AccountNumber: recipient.AccountNumber,
		})
	}

	return file
}

func fromSchema(file fileSchema) domain.Snapshot {
	snapshot := domain.Snapshot{SyncedAt: parseTime(file.SyncedAt)}

	for _, entry := range file.Linked {
		account := domain.Account{
			ID:            domain.AccountID(entry.ID),
			InstitutionID: entry.InstitutionID,
			BankName:      entry.BankName,
			AccountNumber: entry.AccountNumber,
			MaskedAccount: entry.MaskedAccount,
			OwnerName:     entry.OwnerName,
			Balance:       entry.Balance,
			ESGPoint:      entry.ESGPoint,
		}
		for _, goal := range entry.Goals {
			account.Goals = append(account.Goals, domain.Goal{
				ID:            domain.GoalID(goal.ID),
				BankAccountID: domain.AccountID(goal.BankAccountID),
				Purpose:       goal.Purpose,
				LimitAmount:   goal.LimitAmount,
				Cycle:         domain.GoalCycle(goal.Cycle),
				Spent:         goal.Spent,
			})
		}
		snapshot.Linked = append(snapshot.Linked, account)
	}

	for _, entry := range file.Suggested {
		snapshot.Suggested = append(snapshot.Suggested, domain.SuggestedAccount{
			InstitutionID: entry.InstitutionID,
			AccountNumber: entry.AccountNumber,
			BankName:      entry.BankName,
			OwnerName:     entry.OwnerName,
		})
	}

	for _, entry := range file.Recipients {
		snapshot.Recipients = append(snapshot.Recipients, domain.Recipient{
			ID:            domain.AccountID(entry.ID),
			OwnerName:     entry.OwnerName,
			BankName:      entry.BankName,
			AccountNumber: entry.AccountNumber,
		})
	}

	return snapshot
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
