// Package contacts persists contact records on the local filesystem, one
// JSON file per record, named after the record's id.
package contacts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rolodexd/rolodexd/entities/models"
	uc "github.com/rolodexd/rolodexd/usecases/contacts"
)

// Make sure Repo always implements the use-case contract
var _ uc.Repo = &Repo{}

// Repo stores one file per contact under dataPath as <id>.json. Concurrent
// writers to the same id race with last-writer-wins semantics, but a reader
// can never observe a partially written record: writes go to a scoped temp
// file first and are renamed into place.
type Repo struct {
	dataPath string
	logger   logrus.FieldLogger
}

// NewRepo creates the data directory if it doesn't exist yet
func NewRepo(dataPath string, logger logrus.FieldLogger) (*Repo, error) {
	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create data directory '%s'", dataPath)
	}

	return &Repo{
		dataPath: dataPath,
		logger:   logger,
	}, nil
}

// Put stores the contact under its id and returns the stored record. A
// record already stored under the same id is silently overwritten.
func (r *Repo) Put(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	b, err := json.Marshal(contact)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal contact '%s'", contact.ID)
	}

	tmp, err := os.CreateTemp(r.dataPath, ".put-*.tmp")
	if err != nil {
		return nil, errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return nil, errors.Wrap(err, "write temp file")
	}

	if err := tmp.Close(); err != nil {
		return nil, errors.Wrap(err, "close temp file")
	}

	path := r.pathOf(contact.ID)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, errors.Wrapf(err, "store contact '%s'", contact.ID)
	}

	r.logger.
		WithField("action", "contact_put").
		WithField("path", path).
		Debug("contact written")

	return contact, nil
}

// ByID reads the file stored under the id and unmarshals it
func (r *Repo) ByID(ctx context.Context, id string) (*models.Contact, error) {
	b, err := os.ReadFile(r.pathOf(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, uc.NewErrNotFound("no contact with id '%s'", id)
		}

		return nil, errors.Wrapf(err, "read contact '%s'", id)
	}

	var contact models.Contact
	if err := json.Unmarshal(b, &contact); err != nil {
		return nil, errors.Wrapf(err, "unmarshal contact '%s'", id)
	}

	return &contact, nil
}

// pathOf relies on the use-case layer having validated the id as a safe
// single path element
func (r *Repo) pathOf(id string) string {
	return filepath.Join(r.dataPath, fmt.Sprintf("%s.json", id))
}
