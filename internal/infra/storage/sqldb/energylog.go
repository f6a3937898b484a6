package sqldb

import (
	"context"
	"time"

	"github.com/jazzy1902/Monad-BlockHackers/internal/energylog"
)

// energyLogRow is the persisted shape of an energylog.LogRecord.
type energyLogRow struct {
	ID              uint64  `gorm:"primaryKey;autoIncrement"`
	DeviceID        *string `gorm:"index"`
	Wallet          string  `gorm:"index;not null"`
	Units           float64 `gorm:"not null"`
	DeviceTimestamp *string
	ReceivedAt      time.Time `gorm:"not null"`
	TxHash          *string
	TokenID         *uint64
	TokenURI        *string
}

func (energyLogRow) TableName() string {
	return "energy_logs"
}

func newEnergyLogRow(record energylog.LogRecord) energyLogRow {
	return energyLogRow{
		DeviceID:        record.DeviceID,
		Wallet:          record.Wallet,
		Units:           record.Units,
		DeviceTimestamp: record.DeviceTimestamp,
		ReceivedAt:      record.ReceivedAt,
		TxHash:          record.TxHash,
		TokenID:         record.TokenID,
		TokenURI:        record.TokenURI,
	}
}

func (r energyLogRow) toRecord() energylog.LogRecord {
	return energylog.LogRecord{
		ID:              r.ID,
		Wallet:          r.Wallet,
		Units:           r.Units,
		DeviceID:        r.DeviceID,
		DeviceTimestamp: r.DeviceTimestamp,
		ReceivedAt:      r.ReceivedAt.UTC(),
		TxHash:          r.TxHash,
		TokenID:         r.TokenID,
		TokenURI:        r.TokenURI,
	}
}

// AppendLog implements energylog.Storage. The id comes from the table's
// autoincrement column, so concurrent inserts never share one.
func (c *client) AppendLog(ctx context.Context, record energylog.LogRecord) (energylog.LogRecord, error) {
	row := newEnergyLogRow(record)
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		return energylog.LogRecord{}, err
	}

	return row.toRecord(), nil
}

// ListLogsByWallet implements energylog.Storage.
func (c *client) ListLogsByWallet(ctx context.Context, wallet string, offset, limit int) ([]energylog.LogRecord, error) {
	var rows []energyLogRow
	err := c.db.WithContext(ctx).
		Where("wallet = ?", wallet).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]energylog.LogRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}

	return records, nil
}
