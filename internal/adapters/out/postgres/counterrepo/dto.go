// Package counterrepo persists named atomic counters, the source of the
// numeric order ids. A counter row only ever grows, so ids are strictly
// increasing and never reused even after permanent deletes.
package counterrepo

// CounterDTO represents one named counter row.
type CounterDTO struct {
	Name  string `gorm:"primaryKey"`
	Value int64
}

// TableName specifies the database table name for counter entities.
func (CounterDTO) TableName() string {
	return "counters"
}
