package column

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/dot5enko/column-engine/lists"
	"github.com/dot5enko/column-engine/schema"
)

var (
	ErrOutOfRange      = errors.New("position out of range")
	ErrCorruptSnapshot = errors.New("corrupt column snapshot")
)

// Verbose enables trace logging of engine operations. Off by default;
// library paths stay silent unless a caller flips it.
var Verbose = false

func tracef(format string, args ...any) {
	if Verbose {
		log.Printf(format, args...)
	}
}

func outOfRange(name string, tid schema.TID, size int) error {
	return fmt.Errorf("%w: position %d in column `%s` of size %d", ErrOutOfRange, tid, name, size)
}

// Column is the untyped contract every column variant implements. A
// column is exclusively owned by one caller; concurrent mutation is
// undefined. ParallelSelection is the only operation that fans work
// out internally, and it never mutates the column.
type Column interface {
	Name() string
	Uid() uuid.UUID
	Type() schema.AttributeType

	// Insert appends to the logical end of the column.
	Insert(v schema.Value) error
	Update(tid schema.TID, v schema.Value) error
	UpdateMany(tids lists.PositionList, v schema.Value) error
	Remove(tid schema.TID) error
	// RemoveMany expects tids sorted ascending; positions are removed
	// highest first so pending ones stay valid.
	RemoveMany(tids lists.PositionList) error
	Clear()

	Get(tid schema.TID) (schema.Value, error)
	Size() int
	SizeInBytes() int
	Copy() Column
	Print() string
	Equal(other Column) bool

	Materialized() bool
	Compressed() bool

	// Store writes the column snapshot to path + column name; the
	// caller supplies a trailing separator if one is wanted.
	Store(path string) error
	// Load clears the column, then restores it from path + name.
	Load(path string) error

	Sort(order schema.SortOrder) lists.PositionList
	Selection(v schema.Value, comp schema.ValueComparator) (lists.PositionList, error)
	ParallelSelection(v schema.Value, comp schema.ValueComparator, threads int) (lists.PositionList, error)
	HashJoin(other Column) (lists.PositionListPair, error)
	SortMergeJoin(other Column) (lists.PositionListPair, error)
	NestedLoopJoin(other Column) (lists.PositionListPair, error)

	// Arithmetic over numeric columns. Failures (non-numeric element
	// type, operand mismatch, zero divisor) report false and leave the
	// column untouched.
	Add(v schema.Value) bool
	AddColumn(other Column) bool
	Minus(v schema.Value) bool
	MinusColumn(other Column) bool
	Multiply(v schema.Value) bool
	MultiplyColumn(other Column) bool
	Divide(v schema.Value) bool
	DivideColumn(other Column) bool
}
