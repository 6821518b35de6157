package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/samber/lo"
	bolt "go.etcd.io/bbolt"
	"golang.org/x/exp/slices"
)

const (
	articlesBktName = "articles"
	externalBktName = "external_ids"
)

// Bolt is a storage that uses BoltDB as a backend.
type Bolt struct {
	db *bolt.DB
}

// NewBolt creates new Bolt storage.
func NewBolt(dir string) (*Bolt, error) {
	db, err := bolt.Open(path.Join(dir, "articles.db"), 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to make boltdb for %s: %w", dir, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{articlesBktName, externalBktName} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create top-level bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("make buckets: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Add puts article to storage. It returns ErrDuplicate if
// an article with the same external id is already stored.
func (b *Bolt) Add(_ context.Context, a Article) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		ext := tx.Bucket([]byte(externalBktName))
		if a.ExternalID != "" {
			if ext.Get([]byte(a.ExternalID)) != nil {
				return ErrDuplicate
			}
			if err := ext.Put([]byte(a.ExternalID), []byte(a.ID)); err != nil {
				return fmt.Errorf("put external id: %w", err)
			}
		}

		bts, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("marshal article: %w", err)
		}

		if err := tx.Bucket([]byte(articlesBktName)).Put([]byte(a.ID), bts); err != nil {
			return fmt.Errorf("put article to storage: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("update storage: %w", err)
	}

	return nil
}

// List returns a page of articles, newest first.
func (b *Bolt) List(_ context.Context, req ListRequest) (ArticlePage, error) {
	var all []Article
	err := b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket([]byte(articlesBktName))
		err := bkt.ForEach(func(k, v []byte) error {
			var a Article
			if err := json.Unmarshal(v, &a); err != nil {
				return fmt.Errorf("unmarshal article %s: %w", k, err)
			}
			all = append(all, a)
			return nil
		})
		if err != nil {
			return fmt.Errorf("foreach: %w", err)
		}
		return nil
	})
	if err != nil {
		return ArticlePage{}, fmt.Errorf("view storage: %w", err)
	}

	all = lo.Filter(all, func(a Article, _ int) bool {
		if req.Keyword != "" && a.SearchKeyword != req.Keyword {
			return false
		}
		return req.Source == "" || strings.EqualFold(a.Source, req.Source)
	})

	slices.SortStableFunc(all, func(a, b Article) bool {
		l, r := a.PublishedAt, b.PublishedAt
		switch {
		case l == nil:
			return false
		case r == nil:
			return true
		default:
			return l.After(*r)
		}
	})

	page := ArticlePage{Results: []Article{}, Total: len(all), Page: req.Page, PageSize: req.PageSize}
	offset := (req.Page - 1) * req.PageSize
	if req.Page < 1 || req.PageSize <= 0 || offset >= len(all) {
		return page, nil
	}

	page.Results = all[offset:lo.Min([]int{offset + req.PageSize, len(all)})]
	return page, nil
}

// Get returns article from storage.
func (b *Bolt) Get(_ context.Context, id string) (a Article, err error) {
	err = b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket([]byte(articlesBktName))

		bts := bkt.Get([]byte(id))
		if bts == nil {
			return ErrNotFound
		}

		if err := json.Unmarshal(bts, &a); err != nil {
			return fmt.Errorf("unmarshal article: %w", err)
		}

		return nil
	})
	if err != nil {
		return Article{}, fmt.Errorf("view storage: %w", err)
	}

	return a, nil
}

// Close closes the storage.
func (b *Bolt) Close() error { return b.db.Close() }
