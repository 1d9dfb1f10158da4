//go:build !cgo

package store

// SQLiteErrorClassifier is inert without cgo: go-sqlite3 cannot open a
// database then, so there is nothing to classify.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(error) ErrorClassification {
	return Unclassified
}
