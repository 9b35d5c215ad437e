package foreign

import (
	"bytes"
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/txkernel/amap"
	"github.com/veilmesh/go-veilmesh/txkernel/core"
)

// Decoding limits for witness records. They bound memory, not semantics: a
// record within the limits can still fail the commitment check.
const (
	maxWitnessSlots      = 256
	maxWitnessProcedures = 256
	maxWitnessEntries    = 4096
)

// mapEntry is one key/value pair of an authenticated map carried in a
// witness record.
type mapEntry struct {
	Key   types.Word
	Value types.Word
}

// EncodeScale implements scale codec interface.
func (m *mapEntry) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := m.Key.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := m.Value.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (m *mapEntry) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := m.Key.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := m.Value.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// slotRecord is one storage slot of a witness record. Value slots carry their
// word directly; map slots carry the full entry set, from which the slot root
// is rebuilt.
type slotRecord struct {
	Kind    uint8
	Value   types.Word
	Entries []mapEntry
}

// EncodeScale implements scale codec interface.
func (s *slotRecord) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeCompact8(enc, s.Kind)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := s.Value.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeStructSliceWithLimit(enc, s.Entries, maxWitnessEntries)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (s *slotRecord) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeCompact8(dec)
		if err != nil {
			return total, err
		}
		total += n
		s.Kind = field
	}
	{
		n, err := s.Value.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeStructSliceWithLimit[mapEntry](dec, maxWitnessEntries)
		if err != nil {
			return total, err
		}
		total += n
		s.Entries = field
	}
	return total, nil
}

// procedureRecord is one procedure of a witness record.
type procedureRecord struct {
	Digest types.Word
	Offset uint8
	Size   uint8
}

// EncodeScale implements scale codec interface.
func (p *procedureRecord) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := p.Digest.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact8(enc, p.Offset)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact8(enc, p.Size)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (p *procedureRecord) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := p.Digest.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeCompact8(dec)
		if err != nil {
			return total, err
		}
		total += n
		p.Offset = field
	}
	{
		field, n, err := scale.DecodeCompact8(dec)
		if err != nil {
			return total, err
		}
		total += n
		p.Size = field
	}
	return total, nil
}

// witnessRecord is the wire form of a foreign account snapshot served by an
// advice provider. It carries everything the account commitment binds, plus
// the entry sets of the vault and of every map slot so their roots can be
// rebuilt locally.
type witnessRecord struct {
	ID           types.AccountID
	Nonce        uint64
	CodeRoot     types.Word
	Slots        []slotRecord
	Procedures   []procedureRecord
	VaultEntries []mapEntry
}

// EncodeScale implements scale codec interface.
func (w *witnessRecord) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := w.ID.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact64(enc, w.Nonce)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := w.CodeRoot.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeStructSliceWithLimit(enc, w.Slots, maxWitnessSlots)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeStructSliceWithLimit(enc, w.Procedures, maxWitnessProcedures)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeStructSliceWithLimit(enc, w.VaultEntries, maxWitnessEntries)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (w *witnessRecord) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := w.ID.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeCompact64(dec)
		if err != nil {
			return total, err
		}
		total += n
		w.Nonce = field
	}
	{
		n, err := w.CodeRoot.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeStructSliceWithLimit[slotRecord](dec, maxWitnessSlots)
		if err != nil {
			return total, err
		}
		total += n
		w.Slots = field
	}
	{
		field, n, err := scale.DecodeStructSliceWithLimit[procedureRecord](dec, maxWitnessProcedures)
		if err != nil {
			return total, err
		}
		total += n
		w.Procedures = field
	}
	{
		field, n, err := scale.DecodeStructSliceWithLimit[mapEntry](dec, maxWitnessEntries)
		if err != nil {
			return total, err
		}
		total += n
		w.VaultEntries = field
	}
	return total, nil
}

// decodeWitness parses a scale-encoded witness record. Trailing bytes are
// rejected.
func decodeWitness(raw []byte) (*witnessRecord, error) {
	var record witnessRecord
	reader := bytes.NewReader(raw)
	if _, err := record.DecodeScale(scale.NewDecoder(reader)); err != nil {
		return nil, err
	}
	if reader.Len() != 0 {
		return nil, fmt.Errorf("%d trailing bytes", reader.Len())
	}
	return &record, nil
}

// restore turns a decoded witness record into an account snapshot,
// registering vault and map slot entries with the map service and rebuilding
// the roots from them. The result is untrusted until its commitment is
// compared against the ledger.
func (w *witnessRecord) restore(maps *amap.Service) (*core.Account, error) {
	account := &core.Account{
		ID:       w.ID,
		Nonce:    types.NewFelt(w.Nonce),
		CodeRoot: w.CodeRoot,
	}
	account.Slots = make([]core.StorageSlot, 0, len(w.Slots))
	for i, slot := range w.Slots {
		switch core.SlotKind(slot.Kind) {
		case core.SlotValue:
			if len(slot.Entries) != 0 {
				return nil, fmt.Errorf("value slot %d carries map entries", i)
			}
			account.Slots = append(account.Slots, core.StorageSlot{Kind: core.SlotValue, Value: slot.Value})
		case core.SlotMap:
			if !slot.Value.IsEmpty() {
				return nil, fmt.Errorf("map slot %d carries an inline value", i)
			}
			root := maps.Build(entriesToMap(slot.Entries))
			account.Slots = append(account.Slots, core.StorageSlot{Kind: core.SlotMap, Value: root})
		default:
			return nil, fmt.Errorf("slot %d has unknown kind %d", i, slot.Kind)
		}
	}
	account.Procedures = make([]core.Procedure, 0, len(w.Procedures))
	for _, proc := range w.Procedures {
		account.Procedures = append(account.Procedures, core.Procedure{
			Digest:        proc.Digest,
			StorageOffset: proc.Offset,
			StorageSize:   proc.Size,
		})
	}
	// The account commitment binds the code root, not the procedure entries.
	// The table the authentication gate will resolve callers against must
	// hash to that root, or a record could smuggle in procedures the account
	// never had.
	if commitment := account.CodeCommitment(); commitment != w.CodeRoot {
		return nil, fmt.Errorf("procedure table hashes to %s, code root is %s", commitment, w.CodeRoot)
	}
	account.VaultRoot = maps.Build(entriesToMap(w.VaultEntries))
	return account, nil
}

func entriesToMap(entries []mapEntry) map[types.Word]types.Word {
	out := make(map[types.Word]types.Word, len(entries))
	for _, entry := range entries {
		out[entry.Key] = entry.Value
	}
	return out
}
