package exporter

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/documents"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/storageproxy"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type mockRemote struct {
	mock.Mock
}

func (m *mockRemote) SaveDocument(ctx context.Context, req *storageproxy.SaveRequest) (*storageproxy.SaveResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*storageproxy.SaveResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type failingSaver struct{}

func (failingSaver) Put(context.Context, string, []byte, string) (*documents.Location, error) {
	return nil, errors.New("disk full")
}

var fixedNow = time.Date(2025, 5, 20, 14, 30, 0, 0, time.UTC)

func testBundle(t *testing.T) *domain.AppointmentBundle {
	t.Helper()
	svc := domain.NewService(7, "Corte Masculino")
	require.NoError(t, svc.SetPrice(decimal.RequireFromString("45")))
	svc.SetStaffNames([]string{"João", "Pedro"})

	return &domain.AppointmentBundle{
		Customer: &domain.Customer{ID: 9, Name: "Ana", NationalID: "12345678900", Email: "ana@example.com"},
		Appointment: &domain.Appointment{
			ID:       42,
			ShopID:   1,
			DateTime: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
			Notes:    "Chegar cedo, por favor",
		},
		Service: svc,
		Shop:    &domain.Shop{ID: 1, Name: "Barbearia Centro", Address: "Rua A, 10"},
	}
}

func newTestService(t *testing.T, remote RemoteSaver, saveRemote bool) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	svc := NewService(documents.NewFilesystem(dir, "/downloads"), remote, Options{
		SaveRemote: saveRemote,
		Location:   time.UTC,
		Now:        func() time.Time { return fixedNow },
	}, nil, logger.NewNop())
	return svc, dir
}

func TestRender_HTMLAndCSVCarrySameValues(t *testing.T) {
	svc, _ := newTestService(t, nil, false)
	bundle := testBundle(t)

	html, err := svc.Render(bundle, domain.FormatHTML)
	require.NoError(t, err)
	csv, err := svc.Render(bundle, domain.FormatCSV)
	require.NoError(t, err)

	for _, doc := range []*Document{html, csv} {
		assert.Contains(t, doc.Content, "Ana")
		assert.Contains(t, doc.Content, "45,00")
		assert.Contains(t, doc.Content, "Barbearia Centro")
		assert.Contains(t, doc.Content, "123.456.789-00")
	}
	assert.Contains(t, html.Content, "R$ 45,00")
	assert.Contains(t, html.Content, "01/06/2025 09:00")
	assert.Equal(t, "12345678900", bundle.Customer.NationalID)
}

func TestRender_CSVLayout(t *testing.T) {
	svc, _ := newTestService(t, nil, false)
	doc, err := svc.Render(testBundle(t), domain.FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(doc.Content, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], `"Protocolo","Data Emissão","Nome Cliente"`))
	assert.Contains(t, lines[1], `"Chegar cedo; por favor"`)
	assert.Contains(t, lines[1], `"João; Pedro"`)
	assert.Contains(t, lines[1], `"20/05/2025 14:30:00"`)
	assert.Equal(t, "AGD-1748768400000-42.csv", doc.FileName)
	assert.True(t, bytes.HasPrefix(doc.Payload, utf8BOM))
	assert.False(t, strings.HasPrefix(doc.Content, string(utf8BOM)))
}

func TestRender_MissingValuesAsNA(t *testing.T) {
	svc, _ := newTestService(t, nil, false)
	bundle := &domain.AppointmentBundle{
		Customer:    &domain.Customer{Name: "Bruno"},
		Appointment: &domain.Appointment{DateTime: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
	}

	doc, err := svc.Render(bundle, domain.FormatTXT)
	require.NoError(t, err)
	assert.Contains(t, doc.Content, "CPF: N/A")
	assert.Contains(t, doc.Content, "Valor: N/A")
	assert.Contains(t, doc.Content, "ID Agendamento: N/A")
	assert.Equal(t, "AGD-1748768400000-1748768400000", doc.Protocol)
	assert.True(t, bytes.HasPrefix(doc.Payload, utf8BOM))
}

func TestRender_HTMLEscapesUserInput(t *testing.T) {
	svc, _ := newTestService(t, nil, false)
	bundle := testBundle(t)
	bundle.Appointment.Notes = "<script>alert(1)</script>"

	doc, err := svc.Render(bundle, domain.FormatHTML)
	require.NoError(t, err)
	assert.NotContains(t, doc.Content, "<script>")
	assert.False(t, bytes.HasPrefix(doc.Payload, utf8BOM))
}

func TestExport_LocalAndRemote(t *testing.T) {
	remote := &mockRemote{}
	remote.On("SaveDocument", mock.Anything, mock.MatchedBy(func(req *storageproxy.SaveRequest) bool {
		return req.Protocol == "AGD-1748768400000-42" &&
			req.FileName == "AGD-1748768400000-42.html" &&
			req.Appointment.CustomerID == 9 &&
			req.Appointment.ShopID == 1 &&
			req.Appointment.DateTime == "2025-06-01T09:00:00"
	})).Return(&storageproxy.SaveResponse{Success: true, StorageType: "s3", URL: "https://x/y"}, nil).Once()

	svc, dir := newTestService(t, remote, true)
	result, err := svc.Export(context.Background(), testBundle(t), domain.FormatHTML)
	require.NoError(t, err)

	assert.FileExists(t, dir+"/AGD-1748768400000-42.html")
	require.NotNil(t, result.Remote)
	assert.Equal(t, "s3", result.Remote.StorageType)
	remote.AssertExpectations(t)
}

func TestExport_RemoteFailureIsSwallowed(t *testing.T) {
	remote := &mockRemote{}
	remote.On("SaveDocument", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	svc, dir := newTestService(t, remote, true)
	result, err := svc.Export(context.Background(), testBundle(t), domain.FormatTXT)
	require.NoError(t, err)

	assert.Nil(t, result.Remote)
	assert.Contains(t, result.RemoteError, "connection refused")

	data, readErr := os.ReadFile(dir + "/" + result.FileName)
	require.NoError(t, readErr)
	assert.True(t, bytes.HasPrefix(data, utf8BOM))
}

func TestExport_RemoteDisabled(t *testing.T) {
	remote := &mockRemote{}
	svc, _ := newTestService(t, remote, false)

	_, err := svc.Export(context.Background(), testBundle(t), domain.FormatCSV)
	require.NoError(t, err)
	remote.AssertNotCalled(t, "SaveDocument", mock.Anything, mock.Anything)
}

func TestExport_LocalSaveFailure(t *testing.T) {
	svc := NewService(failingSaver{}, nil, Options{Location: time.UTC}, nil, logger.NewNop())

	_, err := svc.Export(context.Background(), testBundle(t), domain.FormatHTML)
	require.Error(t, err)

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, StageLocalSave, exportErr.Stage)
	assert.ErrorIs(t, err, ErrExport)
}

func TestExport_IncompleteBundle(t *testing.T) {
	svc, _ := newTestService(t, nil, false)
	_, err := svc.Export(context.Background(), &domain.AppointmentBundle{}, domain.FormatHTML)
	assert.ErrorIs(t, err, ErrExport)
	assert.ErrorIs(t, err, ErrIncompleteBundle)
}
