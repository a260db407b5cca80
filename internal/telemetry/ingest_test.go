package telemetry

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/fleetops/fleet-management/internal/models"
)

// fakeVehicles records RaiseVehicleMileage calls and satisfies the rest of
// the collection interface with no-ops.
type fakeVehicles struct {
	raisedID      string
	raisedMileage float64
	raiseResult   bool
	calls         int
}

func (f *fakeVehicles) InsertVehicle(ctx context.Context, vehicle models.Vehicle) error { return nil }
func (f *fakeVehicles) FindVehicles(ctx context.Context, filter bson.M) ([]models.Vehicle, error) {
	return nil, nil
}
func (f *fakeVehicles) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	return nil, nil
}
func (f *fakeVehicles) ReplaceVehicle(ctx context.Context, id string, vehicle models.Vehicle) error {
	return nil
}
func (f *fakeVehicles) SetVehicleFields(ctx context.Context, id string, fields bson.M) error {
	return nil
}
func (f *fakeVehicles) TransitionVehicleStatus(ctx context.Context, id string, from, to models.VehicleStatus) (bool, error) {
	return false, nil
}
func (f *fakeVehicles) RaiseVehicleMileage(ctx context.Context, id string, mileage float64) (bool, error) {
	f.calls++
	f.raisedID = id
	f.raisedMileage = mileage
	return f.raiseResult, nil
}
func (f *fakeVehicles) DeleteVehicle(ctx context.Context, id string) error { return nil }

// fakeMessage satisfies the parts of mqtt.Message the handler touches.
type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 1 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

func testIngestor(vehicles *fakeVehicles) *Ingestor {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &Ingestor{vehicles: vehicles, log: log}
}

func TestIngestor_HandleOdometer(t *testing.T) {
	vehicles := &fakeVehicles{raiseResult: true}
	ingestor := testIngestor(vehicles)

	payload, _ := json.Marshal(OdometerReading{
		VehicleID:  "abc123",
		Mileage:    15250.5,
		RecordedAt: time.Now().UTC(),
	})
	ingestor.handleOdometer(nil, &fakeMessage{topic: "fleet/abc123/odometer", payload: payload})

	assert.Equal(t, 1, vehicles.calls)
	assert.Equal(t, "abc123", vehicles.raisedID)
	assert.Equal(t, 15250.5, vehicles.raisedMileage)
}

func TestIngestor_HandleOdometer_MalformedPayload(t *testing.T) {
	vehicles := &fakeVehicles{}
	ingestor := testIngestor(vehicles)

	ingestor.handleOdometer(nil, &fakeMessage{topic: "fleet/abc123/odometer", payload: []byte("not json")})
	assert.Equal(t, 0, vehicles.calls)
}

func TestIngestor_HandleOdometer_RejectsBadReading(t *testing.T) {
	vehicles := &fakeVehicles{}
	ingestor := testIngestor(vehicles)

	missing, _ := json.Marshal(OdometerReading{Mileage: 100})
	ingestor.handleOdometer(nil, &fakeMessage{payload: missing})

	negative, _ := json.Marshal(OdometerReading{VehicleID: "abc123", Mileage: -1})
	ingestor.handleOdometer(nil, &fakeMessage{payload: negative})

	assert.Equal(t, 0, vehicles.calls)
}
