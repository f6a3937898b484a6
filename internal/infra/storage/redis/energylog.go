package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jazzy1902/Monad-BlockHackers/internal/energylog"

	redis "github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

// energyLogPrefix is the base prefix of every key owned by the energy log.
const energyLogPrefix = "energylog"

// energyLogSeqKey holds the counter that assigns record ids.
//
// Format: "energylog:seq"
func energyLogSeqKey() string {
	return energyLogPrefix + ":seq"
}

// energyLogRecordKey returns the key holding the encoded record with the given id.
//
// Format: "energylog:record:{id}"
func energyLogRecordKey(id uint64) string {
	return fmt.Sprintf("%s:record:%d", energyLogPrefix, id)
}

// energyLogWalletKey returns the sorted set indexing the record ids of a
// wallet, scored by id.
//
// Format: "energylog:wallet:{wallet}"
func energyLogWalletKey(wallet string) string {
	return fmt.Sprintf("%s:wallet:%s", energyLogPrefix, wallet)
}

// energyLogEntry is the msgpack shape of a stored record.
type energyLogEntry struct {
	ID              uint64    `msgpack:"id"`
	Wallet          string    `msgpack:"wallet"`
	Units           float64   `msgpack:"units"`
	DeviceID        *string   `msgpack:"device_id,omitempty"`
	DeviceTimestamp *string   `msgpack:"device_timestamp,omitempty"`
	ReceivedAt      time.Time `msgpack:"received_at"`
	TxHash          *string   `msgpack:"tx_hash,omitempty"`
	TokenID         *uint64   `msgpack:"token_id,omitempty"`
	TokenURI        *string   `msgpack:"token_uri,omitempty"`
}

func encodeEnergyLog(record energylog.LogRecord) ([]byte, error) {
	return msgpack.Marshal(energyLogEntry{
		ID:              record.ID,
		Wallet:          record.Wallet,
		Units:           record.Units,
		DeviceID:        record.DeviceID,
		DeviceTimestamp: record.DeviceTimestamp,
		ReceivedAt:      record.ReceivedAt,
		TxHash:          record.TxHash,
		TokenID:         record.TokenID,
		TokenURI:        record.TokenURI,
	})
}

func decodeEnergyLog(data []byte) (energylog.LogRecord, error) {
	var entry energyLogEntry
	if err := msgpack.Unmarshal(data, &entry); err != nil {
		return energylog.LogRecord{}, err
	}

	return energylog.LogRecord{
		ID:              entry.ID,
		Wallet:          entry.Wallet,
		Units:           entry.Units,
		DeviceID:        entry.DeviceID,
		DeviceTimestamp: entry.DeviceTimestamp,
		ReceivedAt:      entry.ReceivedAt.UTC(),
		TxHash:          entry.TxHash,
		TokenID:         entry.TokenID,
		TokenURI:        entry.TokenURI,
	}, nil
}

// AppendLog implements energylog.Storage.
//
// The id is taken from INCR on the sequence key, which Redis executes
// atomically. The record body and its wallet index entry are then written in
// a single MULTI/EXEC transaction, so a record is never visible without its
// index or the other way round.
func (c *client) AppendLog(ctx context.Context, record energylog.LogRecord) (energylog.LogRecord, error) {
	id, err := c.conn.Incr(ctx, energyLogSeqKey()).Uint64()
	if err != nil {
		return energylog.LogRecord{}, err
	}
	record.ID = id

	payload, err := encodeEnergyLog(record)
	if err != nil {
		return energylog.LogRecord{}, err
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, energyLogRecordKey(id), payload, 0)
		pipe.ZAdd(ctx, energyLogWalletKey(record.Wallet), redis.Z{
			Score:  float64(id),
			Member: strconv.FormatUint(id, 10),
		})
		return nil
	})
	if err != nil {
		return energylog.LogRecord{}, err
	}

	return record, nil
}

// ListLogsByWallet implements energylog.Storage using ZREVRANGE over the
// wallet index followed by a single MGET of the record bodies.
func (c *client) ListLogsByWallet(ctx context.Context, wallet string, offset, limit int) ([]energylog.LogRecord, error) {
	start := int64(offset)
	stop := start + int64(limit) - 1

	members, err := c.conn.ZRevRange(ctx, energyLogWalletKey(wallet), start, stop).Result()
	if err != nil {
		return nil, err
	}

	if len(members) == 0 {
		return []energylog.LogRecord{}, nil
	}

	keys := make([]string, len(members))
	for i, member := range members {
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt wallet index entry %q: %w", member, err)
		}
		keys[i] = energyLogRecordKey(id)
	}

	values, err := c.conn.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	records := make([]energylog.LogRecord, 0, len(values))
	for i, value := range values {
		// Records are never deleted; a missing body means the key was
		// removed out of band.
		raw, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("missing energy log record %s", keys[i])
		}

		record, err := decodeEnergyLog([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		records = append(records, record)
	}

	return records, nil
}
