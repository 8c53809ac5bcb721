// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	sliceKxvI4pCzYE1f3ayiu3jFQwΞΞ = ord.NewSliceSer[float32](varint.Float32)
	sliceTbvnAmORks20Jf0rUqhBTwΞΞ = ord.NewSliceSer[string](ord.String)
)

var InteractionKindMUS = interactionKindMUS{}

type interactionKindMUS struct{}

func (s interactionKindMUS) Marshal(v InteractionKind, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s interactionKindMUS) Unmarshal(bs []byte) (v InteractionKind, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = InteractionKind(tmp)
	return
}

func (s interactionKindMUS) Size(v InteractionKind) (size int) {
	return varint.Int.Size(int(v))
}

func (s interactionKindMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var CatalogEntryMUS = catalogEntryMUS{}

type catalogEntryMUS struct{}

func (s catalogEntryMUS) Marshal(v CatalogEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.ID, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Provider, bs[n:])
	n += ord.String.Marshal(v.ProviderType, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += varint.Int64.Marshal(v.Amount, bs[n:])
	n += sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Marshal(v.Categories, bs[n:])
	n += varint.Int64.Marshal(v.MaxIncome, bs[n:])
	n += sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Marshal(v.Regions, bs[n:])
	n += sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Marshal(v.EducationLevels, bs[n:])
	n += ord.String.Marshal(v.Gender, bs[n:])
	n += varint.Float32.Marshal(v.TrustScore, bs[n:])
	n += ord.Bool.Marshal(v.Verified, bs[n:])
	n += ord.String.Marshal(v.Deadline, bs[n:])
	n += ord.String.Marshal(v.ApplicationLink, bs[n:])
	n += sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Marshal(v.RequiredDocs, bs[n:])
	n += sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Marshal(v.Keywords, bs[n:])
	n += sliceKxvI4pCzYE1f3ayiu3jFQwΞΞ.Marshal(v.Vector, bs[n:])
	n += varint.Uint64.Marshal(v.Ordinal, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s catalogEntryMUS) Unmarshal(bs []byte) (v CatalogEntry, n int, err error) {
	v.ID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Provider, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ProviderType, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Amount, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Categories, n1, err = sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.MaxIncome, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Regions, n1, err = sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EducationLevels, n1, err = sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Gender, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TrustScore, n1, err = varint.Float32.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Verified, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Deadline, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ApplicationLink, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RequiredDocs, n1, err = sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Keywords, n1, err = sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceKxvI4pCzYE1f3ayiu3jFQwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Ordinal, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s catalogEntryMUS) Size(v CatalogEntry) (size int) {
	size = ord.String.Size(v.ID)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Provider)
	size += ord.String.Size(v.ProviderType)
	size += ord.String.Size(v.Description)
	size += varint.Int64.Size(v.Amount)
	size += sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Size(v.Categories)
	size += varint.Int64.Size(v.MaxIncome)
	size += sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Size(v.Regions)
	size += sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Size(v.EducationLevels)
	size += ord.String.Size(v.Gender)
	size += varint.Float32.Size(v.TrustScore)
	size += ord.Bool.Size(v.Verified)
	size += ord.String.Size(v.Deadline)
	size += ord.String.Size(v.ApplicationLink)
	size += sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Size(v.RequiredDocs)
	size += sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Size(v.Keywords)
	size += sliceKxvI4pCzYE1f3ayiu3jFQwΞΞ.Size(v.Vector)
	size += varint.Uint64.Size(v.Ordinal)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s catalogEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float32.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceTbvnAmORks20Jf0rUqhBTwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceKxvI4pCzYE1f3ayiu3jFQwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Uint64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var InteractionEventMUS = interactionEventMUS{}

type interactionEventMUS struct{}

func (s interactionEventMUS) Marshal(v InteractionEvent, bs []byte) (n int) {
	n = IDMUS.Marshal(v.ID, bs)
	n += ord.String.Marshal(v.UserID, bs[n:])
	n += ord.String.Marshal(v.EntryID, bs[n:])
	n += InteractionKindMUS.Marshal(v.Kind, bs[n:])
	n += sliceKxvI4pCzYE1f3ayiu3jFQwΞΞ.Marshal(v.Vector, bs[n:])
	n += varint.Float32.Marshal(v.Weight, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.Timestamp, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
}

func (s interactionEventMUS) Unmarshal(bs []byte) (v InteractionEvent, n int, err error) {
	v.ID, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.UserID, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EntryID, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Kind, n1, err = InteractionKindMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceKxvI4pCzYE1f3ayiu3jFQwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Weight, n1, err = varint.Float32.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Timestamp, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s interactionEventMUS) Size(v InteractionEvent) (size int) {
	size = IDMUS.Size(v.ID)
	size += ord.String.Size(v.UserID)
	size += ord.String.Size(v.EntryID)
	size += InteractionKindMUS.Size(v.Kind)
	size += sliceKxvI4pCzYE1f3ayiu3jFQwΞΞ.Size(v.Vector)
	size += varint.Float32.Size(v.Weight)
	size += raw.TimeUnixMicro.Size(v.Timestamp)
	return size + raw.TimeUnixMicro.Size(v.InsertedAt)
}

func (s interactionEventMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = InteractionKindMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceKxvI4pCzYE1f3ayiu3jFQwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float32.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
