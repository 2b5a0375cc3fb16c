package mutation

import (
	"context"
	"errors"
	"time"

	"car_rental/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const outcomeNotFound = "not_found"

// Recorder receives one observation per create or delete attempt.
type Recorder interface {
	ObserveMutation(entity, op, outcome string, elapsed time.Duration)
}

// Protocol runs every single-row insert and delete inside its own transaction.
// A failed statement or commit rolls the whole transaction back and returns a
// classified *Error. Nothing is retried.
type Protocol struct {
	db       *gorm.DB
	recorder Recorder
}

func NewProtocol(db *gorm.DB, recorder Recorder) *Protocol {
	return &Protocol{db: db, recorder: recorder}
}

// Create inserts row and fills in its generated primary key.
func (p *Protocol) Create(ctx context.Context, entity string, row any) error {
	return p.create(ctx, entity, row, false)
}

// CreateReturning inserts row and reads every column back, so values set by
// column defaults or triggers are visible on row after commit.
func (p *Protocol) CreateReturning(ctx context.Context, entity string, row any) error {
	return p.create(ctx, entity, row, true)
}

func (p *Protocol) create(ctx context.Context, entity string, row any, returning bool) error {
	start := time.Now()

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if returning {
			tx = tx.Clauses(clause.Returning{})
		}
		return tx.Create(row).Error
	})
	if err != nil {
		mErr := &Error{Kind: Classify(err), Op: "create", Entity: entity, Cause: err}
		p.observe(entity, "create", mErr.Kind.String(), start)
		return mErr
	}

	p.observe(entity, "create", KindNone.String(), start)
	return nil
}

// Delete removes the row of table whose primary key equals id. A missing row
// is reported as (false, nil) and leaves the table untouched. Rows still
// referenced by other tables fail at the database and come back unclassified.
func (p *Protocol) Delete(ctx context.Context, table models.Table, id int) (bool, error) {
	start := time.Now()
	deleted := false

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := table.New()
		err := tx.Where(clause.Eq{Column: clause.Column{Name: table.PrimaryKey}, Value: id}).Take(row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Delete(row).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		mErr := &Error{Kind: Classify(err), Op: "delete", Entity: table.Entity, Cause: err}
		p.observe(table.Entity, "delete", mErr.Kind.String(), start)
		return false, mErr
	}

	outcome := KindNone.String()
	if !deleted {
		outcome = outcomeNotFound
	}
	p.observe(table.Entity, "delete", outcome, start)
	return deleted, nil
}

func (p *Protocol) observe(entity, op, outcome string, start time.Time) {
	if p.recorder == nil {
		return
	}
	p.recorder.ObserveMutation(entity, op, outcome, time.Since(start))
}
