package services

import (
	"context"
	"testing"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCategoryRepo struct {
	categories map[uint64]*entities.EquipmentCategory
	inUse      map[uint64]bool
	nextID     uint64
	lastName   string
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: map[uint64]*entities.EquipmentCategory{},
		inUse:      map[uint64]bool{},
		nextID:     1,
	}
}

func (f *fakeCategoryRepo) GetCategories(ctx context.Context, filter types.Filter) ([]entities.EquipmentCategory, uint64, error) {
	out := make([]entities.EquipmentCategory, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, uint64(len(out)), nil
}

func (f *fakeCategoryRepo) FindCategory(ctx context.Context, id uint64) (*entities.EquipmentCategory, error) {
	if c, ok := f.categories[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeCategoryRepo) CreateCategory(ctx context.Context, name string) (*entities.EquipmentCategory, error) {
	category := &entities.EquipmentCategory{ID: f.nextID, Name: name}
	f.categories[f.nextID] = category
	f.nextID++
	f.lastName = name
	return category, nil
}

func (f *fakeCategoryRepo) UpdateCategory(ctx context.Context, id uint64, name string) (*entities.EquipmentCategory, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	c.Name = name
	f.lastName = name
	return c, nil
}

func (f *fakeCategoryRepo) DeleteCategory(ctx context.Context, id uint64) error {
	if _, ok := f.categories[id]; !ok {
		return apperrors.ErrNotFound
	}
	if f.inUse[id] {
		return apperrors.ErrCategoryInUse
	}
	delete(f.categories, id)
	return nil
}

func TestCreateCategoryTrimsName(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, zap.NewNop())

	category, err := svc.CreateCategory(context.Background(), "  CNC Machines  ")
	require.NoError(t, err)
	assert.Equal(t, "CNC Machines", category.Name)
}

func TestCreateCategoryRejectsBlankName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), zap.NewNop())

	_, err := svc.CreateCategory(context.Background(), "   ")
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestUpdateCategoryRejectsBlankName(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, zap.NewNop())
	_, err := svc.CreateCategory(context.Background(), "Vehicles")
	require.NoError(t, err)

	_, err = svc.UpdateCategory(context.Background(), 1, "")
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestDeleteCategoryInUseIsRefused(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, zap.NewNop())
	category, err := svc.CreateCategory(context.Background(), "Vehicles")
	require.NoError(t, err)
	repo.inUse[category.ID] = true

	err = svc.DeleteCategory(context.Background(), category.ID)
	assert.ErrorIs(t, err, apperrors.ErrCategoryInUse)

	// The category survives the refused delete.
	_, err = svc.FindCategory(context.Background(), category.ID)
	assert.NoError(t, err)
}

func TestDeleteCategoryRemovesUnusedCategory(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, zap.NewNop())
	category, err := svc.CreateCategory(context.Background(), "Vehicles")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(context.Background(), category.ID))
	_, err = svc.FindCategory(context.Background(), category.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
