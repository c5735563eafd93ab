package master

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/staffhub-backend-go/internal/domain/shiftmodel"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
)

func TestMain(m *testing.M) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		panic(err)
	}
	timekit.Location = loc
	os.Exit(m.Run())
}

type fakeShiftModelRepo struct {
	models map[string]shiftmodel.ShiftModel
}

func newFakeShiftModelRepo() *fakeShiftModelRepo {
	return &fakeShiftModelRepo{models: make(map[string]shiftmodel.ShiftModel)}
}

func (f *fakeShiftModelRepo) Create(ctx context.Context, m shiftmodel.ShiftModel) (shiftmodel.ShiftModel, error) {
	m.ID = "created"
	f.models[m.ID] = m
	return m, nil
}

func (f *fakeShiftModelRepo) GetByID(ctx context.Context, id string) (shiftmodel.ShiftModel, error) {
	m, ok := f.models[id]
	if !ok {
		return shiftmodel.ShiftModel{}, shiftmodel.ErrShiftModelNotFound
	}
	return m, nil
}

func (f *fakeShiftModelRepo) List(ctx context.Context) ([]shiftmodel.ShiftModel, error) {
	var out []shiftmodel.ShiftModel
	for _, m := range f.models {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeShiftModelRepo) Update(ctx context.Context, m shiftmodel.ShiftModel) error {
	f.models[m.ID] = m
	return nil
}

func (f *fakeShiftModelRepo) Delete(ctx context.Context, id string) error {
	delete(f.models, id)
	return nil
}

func TestShiftModelFormatsTemplateBounds(t *testing.T) {
	svc := NewShiftModelService(newFakeShiftModelRepo())

	resp, err := svc.Create(context.Background(), shiftmodel.CreateShiftModelRequest{
		Name:  "Early",
		Start: 6 * 3600,
		End:   14*3600 + 30*60,
	})
	require.NoError(t, err)

	assert.Equal(t, "06:00", resp.StartTime)
	assert.Equal(t, "14:30", resp.EndTime)
}

func TestShiftModelValidatesBounds(t *testing.T) {
	svc := NewShiftModelService(newFakeShiftModelRepo())

	_, err := svc.Create(context.Background(), shiftmodel.CreateShiftModelRequest{
		Name:  "Bad",
		Start: 25 * 3600,
		End:   2 * 3600,
	})
	assert.Error(t, err)
}

func TestShiftModelUpdatePartial(t *testing.T) {
	repo := newFakeShiftModelRepo()
	svc := NewShiftModelService(repo)

	created, err := svc.Create(context.Background(), shiftmodel.CreateShiftModelRequest{
		Name:  "Late",
		Start: 14 * 3600,
		End:   22 * 3600,
	})
	require.NoError(t, err)

	newEnd := 23 * 3600
	updated, err := svc.Update(context.Background(), created.ID, shiftmodel.UpdateShiftModelRequest{End: &newEnd})
	require.NoError(t, err)

	assert.Equal(t, "Late", updated.Name)
	assert.Equal(t, "14:00", updated.StartTime)
	assert.Equal(t, "23:00", updated.EndTime)
}
