package ioformats

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/DennisOSRM/toolbox-rs-sub000/partition"
)

// WritePartitionFile serializes ids as a 4-byte little-endian count
// followed by that many 4-byte little-endian PartitionID values.
func WritePartitionFile(path string, ids []partition.ID) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ioformats: creating partition file: %w", err)
	}
	defer f.Close()

	if err := binary.Write(f, binary.LittleEndian, uint32(len(ids))); err != nil {
		return fmt.Errorf("ioformats: writing partition count: %w", err)
	}
	raw := make([]uint32, len(ids))
	for i, id := range ids {
		raw[i] = uint32(id)
	}
	if err := binary.Write(f, binary.LittleEndian, raw); err != nil {
		return fmt.Errorf("ioformats: writing partition ids: %w", err)
	}
	return nil
}

// ReadPartitionFile reads a file written by WritePartitionFile.
func ReadPartitionFile(path string) ([]partition.ID, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioformats: opening partition file: %w", err)
	}
	defer f.Close()

	var count uint32
	if err := binary.Read(f, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("ioformats: reading partition count: %w", err)
	}
	raw := make([]uint32, count)
	if err := binary.Read(f, binary.LittleEndian, raw); err != nil {
		return nil, fmt.Errorf("ioformats: reading partition ids: %w", err)
	}
	ids := make([]partition.ID, count)
	for i, v := range raw {
		ids[i] = partition.New(v)
	}
	return ids, nil
}
