package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderByClauseUsesFallbackWhenNoSortRequested(t *testing.T) {
	clause := orderByClause(nil, equipmentAllowedSortFields, "ORDER BY eq.id ASC")
	assert.Equal(t, "ORDER BY eq.id ASC", clause)

	clause = orderByClause(map[string]string{}, equipmentAllowedSortFields, "ORDER BY eq.id ASC")
	assert.Equal(t, "ORDER BY eq.id ASC", clause)
}

func TestOrderByClauseAppliesRequestedSort(t *testing.T) {
	clause := orderByClause(map[string]string{"name": "asc"}, equipmentAllowedSortFields, "ORDER BY eq.id ASC")
	assert.Equal(t, "ORDER BY eq.name ASC", clause)

	clause = orderByClause(map[string]string{"created_at": "desc"}, maintenanceAllowedSortFields, "ORDER BY mr.created_at DESC")
	assert.Equal(t, "ORDER BY mr.created_at DESC", clause)
}

func TestOrderByClauseDropsUnknownFields(t *testing.T) {
	// A field outside the allow-list must never reach the SQL text.
	clause := orderByClause(map[string]string{"password": "asc"}, employeeAllowedSortFields, "ORDER BY e.id ASC")
	assert.Equal(t, "ORDER BY e.id ASC", clause)

	clause = orderByClause(map[string]string{"password": "asc", "name": "desc"}, employeeAllowedSortFields, "ORDER BY e.id ASC")
	assert.Equal(t, "ORDER BY e.name DESC", clause)
}

func TestOrderByClauseEmitsMultipleFieldsInNameOrder(t *testing.T) {
	clause := orderByClause(
		map[string]string{"stage": "asc", "created_at": "desc"},
		maintenanceAllowedSortFields,
		"ORDER BY mr.created_at DESC",
	)
	assert.Equal(t, "ORDER BY mr.created_at DESC, mr.stage ASC", clause)
}

func TestOrderByClauseNormalizesDirection(t *testing.T) {
	clause := orderByClause(map[string]string{"name": "DESC"}, categoryAllowedSortFields, "ORDER BY created_at DESC")
	assert.Equal(t, "ORDER BY name DESC", clause)

	// Anything that is not desc sorts ascending.
	clause = orderByClause(map[string]string{"name": "ascending"}, categoryAllowedSortFields, "ORDER BY created_at DESC")
	assert.Equal(t, "ORDER BY name ASC", clause)
}
