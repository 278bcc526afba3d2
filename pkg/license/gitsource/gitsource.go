package gitsource

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"oss-works/noticegen/pkg/config"
)

// syncTimeout bounds a single clone or pull.
const syncTimeout = 2 * time.Minute

// Source keeps a local clone of the central license-configuration
// repository and resolves file paths inside it. Teams that maintain one
// shared licenses.yaml across projects point git_source at it instead of
// copying the file around.
type Source struct {
	config config.GitSourceConfig
	repo   *gogit.Repository
	logger *slog.Logger
	mu     sync.Mutex
}

// SyncResult describes the outcome of a Sync call.
type SyncResult struct {
	CommitSHA  string
	HadChanges bool
}

// New creates a source for the configured repository. The repository is not
// touched until Sync is called.
func New(cfg config.GitSourceConfig) (*Source, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("git source url cannot be empty")
	}
	if cfg.CacheDir == "" {
		return nil, fmt.Errorf("git source cache_dir cannot be empty")
	}
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}

	return &Source{
		config: cfg,
		logger: slog.Default().With("component", "license.gitsource"),
	}, nil
}

// Sync clones the repository into the cache directory on first use and
// pulls afterwards. It returns the HEAD commit and whether it moved.
func (s *Source) Sync(ctx context.Context) (*SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()

	if s.repo == nil {
		if err := s.openOrClone(ctx); err != nil {
			return nil, err
		}
	}

	ref, err := s.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}
	fromSHA := ref.Hash().String()

	worktree, err := s.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	err = worktree.PullContext(ctx, &gogit.PullOptions{
		RemoteName:    "origin",
		ReferenceName: plumbing.NewBranchReferenceName(s.config.Branch),
	})
	if err != nil && err != gogit.NoErrAlreadyUpToDate {
		return nil, fmt.Errorf("failed to pull license repository: %w", err)
	}

	newRef, err := s.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get new HEAD: %w", err)
	}
	toSHA := newRef.Hash().String()

	result := &SyncResult{CommitSHA: toSHA, HadChanges: fromSHA != toSHA}
	if result.HadChanges {
		s.logger.Info("license configuration updated",
			"from", fromSHA[:8], "to", toSHA[:8])
	} else {
		s.logger.Debug("license configuration up to date", "commit", toSHA[:8])
	}
	return result, nil
}

// openOrClone opens an existing cached clone or creates a fresh one.
func (s *Source) openOrClone(ctx context.Context) error {
	gitDir := filepath.Join(s.config.CacheDir, ".git")
	if _, err := os.Stat(gitDir); err == nil {
		repo, err := gogit.PlainOpen(s.config.CacheDir)
		if err != nil {
			return fmt.Errorf("failed to open cached repository: %w", err)
		}
		s.repo = repo
		return nil
	}

	if err := os.MkdirAll(s.config.CacheDir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	s.logger.Info("cloning license configuration repository",
		"url", s.config.URL, "branch", s.config.Branch)

	repo, err := gogit.PlainCloneContext(ctx, s.config.CacheDir, false, &gogit.CloneOptions{
		URL:           s.config.URL,
		ReferenceName: plumbing.NewBranchReferenceName(s.config.Branch),
		SingleBranch:  true,
	})
	if err != nil {
		return fmt.Errorf("failed to clone license repository: %w", err)
	}

	s.repo = repo
	return nil
}

// Resolve returns the absolute path of a file inside the synced repository,
// honoring the configured subdirectory. The file must exist.
func (s *Source) Resolve(name string) (string, error) {
	path := filepath.Join(s.config.CacheDir, s.config.Path, name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("file %q not found in license repository: %w", name, err)
	}
	return path, nil
}

// LocalDir returns the directory holding the synced configuration files.
func (s *Source) LocalDir() string {
	return filepath.Join(s.config.CacheDir, s.config.Path)
}
