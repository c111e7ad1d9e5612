package storage

import (
	"errors"
	"testing"

	"neuromorph/internal/model"
)

func TestProcessingRunCodecRoundTrip(t *testing.T) {
	input := model.ProcessingRun{
		VersionedRecord: Stamp(),
		ID:              "run-1",
		SpikeCount:      42,
		EfficiencyScore: 0.5,
	}

	data, err := EncodeProcessingRun(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	output, err := DecodeProcessingRun(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if output.ID != input.ID || output.SpikeCount != input.SpikeCount {
		t.Fatalf("round trip mismatch: %+v", output)
	}
}

func TestDecodeRejectsVersionMismatch(t *testing.T) {
	input := model.ProcessingRun{
		VersionedRecord: model.VersionedRecord{SchemaVersion: 99, CodecVersion: CurrentCodecVersion},
		ID:              "run-1",
	}

	data, err := EncodeProcessingRun(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeProcessingRun(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestEnergyReportCodecVersionCheck(t *testing.T) {
	input := model.EnergyReport{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: 2},
		ID:              "energy-1",
	}

	data, err := EncodeEnergyReport(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeEnergyReport(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}
