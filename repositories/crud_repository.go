package repositories

import (
	"gorm.io/gorm"
)

// Ordered is implemented by models that carry a dense 1..N order_number rank.
type Ordered interface {
	SetOrderNumber(n int)
}

// EntityConfig describes one table to the generic repository. Entities are
// configuration records here, not copies of the CRUD logic.
type EntityConfig struct {
	Table    string
	IDColumn string
	Ordered  bool
}

type CrudRepository[T any] struct {
	DB  *gorm.DB
	Cfg EntityConfig
}

func NewCrudRepository[T any](db *gorm.DB, cfg EntityConfig) *CrudRepository[T] {
	return &CrudRepository[T]{DB: db, Cfg: cfg}
}

func (r *CrudRepository[T]) List() ([]T, error) {
	rows := []T{}
	q := r.DB.Model(new(T))
	if r.Cfg.Ordered {
		q = q.Order("order_number")
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CrudRepository[T]) GetByID(id interface{}) (*T, error) {
	var row T
	if err := r.DB.Where(r.Cfg.IDColumn+" = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts the row. For ordered tables the next rank is read and the
// row inserted inside one transaction, so two concurrent creates cannot end
// up with the same order_number.
func (r *CrudRepository[T]) Create(row *T) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if o, ok := any(row).(Ordered); ok && r.Cfg.Ordered {
			next, err := NextOrderNumber(tx, r.Cfg.Table)
			if err != nil {
				return err
			}
			o.SetOrderNumber(next)
		}
		return tx.Create(row).Error
	})
}

// Update overwrites the given columns. A nil value in the map writes SQL
// NULL, which is what callers binding absent JSON fields rely on.
func (r *CrudRepository[T]) Update(id interface{}, values map[string]interface{}) (int64, error) {
	result := r.DB.Model(new(T)).Where(r.Cfg.IDColumn+" = ?", id).Updates(values)
	return result.RowsAffected, result.Error
}

// Delete removes the row and, for ordered tables, renumbers the survivors in
// the same transaction. Either both happen or neither does.
func (r *CrudRepository[T]) Delete(id interface{}) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where(r.Cfg.IDColumn+" = ?", id).Delete(new(T))
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		if affected == 0 || !r.Cfg.Ordered {
			return nil
		}
		return Renumber(tx, r.Cfg.Table, r.Cfg.IDColumn)
	})
	return affected, err
}

func NextOrderNumber(tx *gorm.DB, table string) (int, error) {
	var next int
	err := tx.Table(table).Select("COALESCE(MAX(order_number), 0) + 1").Scan(&next).Error
	return next, err
}

// Renumber reassigns order_number 1..N over the surviving rows, visiting
// them in their current rank order.
func Renumber(tx *gorm.DB, table, idColumn string) error {
	var ids []string
	if err := tx.Table(table).Order("order_number").Pluck(idColumn, &ids).Error; err != nil {
		return err
	}
	for i, id := range ids {
		if err := tx.Table(table).Where(idColumn+" = ?", id).Update("order_number", i+1).Error; err != nil {
			return err
		}
	}
	return nil
}
