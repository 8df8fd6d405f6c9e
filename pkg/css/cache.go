package css

import (
	"time"

	bolt "go.etcd.io/bbolt"

	"src.jubako.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[css] ")

const bucketRules = "rules"

// Cache is a Compiler that keeps the minified form of each distinct
// declaration text in a bbolt database, so that the same styles are not
// minified again by later sessions or after a restart.
type Cache struct {
	db *bolt.DB
	mf *Minifier
}

// OpenCache opens or creates the cache database at the given path.
func OpenCache(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRules))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db, NewMinifier()}, nil
}

// Compile returns the cached minified rule for the declarations, minifying
// and storing it on a miss. A failure to store is logged and otherwise
// ignored.
func (c *Cache) Compile(selector, declarations string) (string, error) {
	var rule string
	c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketRules)).Get([]byte(declarations)); v != nil {
			rule = string(v)
		}
		return nil
	})
	if rule != "" {
		return bind(rule, selector), nil
	}

	rule, err := c.mf.minify(declarations)
	if err != nil {
		return "", err
	}
	err = c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketRules)).Put([]byte(declarations), []byte(rule))
	})
	if err != nil {
		logger.Warn("cannot store compiled style", "error", err)
	}
	return bind(rule, selector), nil
}

// Len returns the number of cached rules.
func (c *Cache) Len() int {
	var n int
	c.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(bucketRules)).Stats().KeyN
		return nil
	})
	return n
}

// Close closes the database.
func (c *Cache) Close() error { return c.db.Close() }
