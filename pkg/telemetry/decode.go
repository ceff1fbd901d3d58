package telemetry

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/pkg/model"
)

// ErrUnknownPacket is returned for packet ids the dashboard doesn't use.
var ErrUnknownPacket = errors.New("unknown packet id")

// Decode parses one raw UDP datagram into an Event. Packet ids other than
// motion, setup, telemetry and status yield ErrUnknownPacket.
func Decode(data []byte) (model.Event, error) {
	var header model.PacketHeader
	if err := binary.Read(
		bytes.NewReader(data), binary.LittleEndian, &header); err != nil {
		return model.Event{}, fmt.Errorf("decoding packet header: %w", err)
	}

	switch model.PacketKind(header.PacketID) {
	case model.KindMotion:
		var pkt model.PacketMotionData
		if err := decodePacket(data, &pkt); err != nil {
			return model.Event{}, err
		}
		return model.Event{Kind: model.KindMotion, Motion: &pkt}, nil
	case model.KindSetup:
		var pkt model.PacketCarSetupData
		if err := decodePacket(data, &pkt); err != nil {
			return model.Event{}, err
		}
		return model.Event{Kind: model.KindSetup, Setup: &pkt}, nil
	case model.KindTelemetry:
		var pkt model.PacketCarTelemetryData
		if err := decodePacket(data, &pkt); err != nil {
			return model.Event{}, err
		}
		return model.Event{Kind: model.KindTelemetry, Telemetry: &pkt}, nil
	case model.KindStatus:
		var pkt model.PacketCarStatusData
		if err := decodePacket(data, &pkt); err != nil {
			return model.Event{}, err
		}
		return model.Event{Kind: model.KindStatus, Status: &pkt}, nil
	default:
		return model.Event{}, ErrUnknownPacket
	}
}

func decodePacket(data []byte, out any) error {
	if err := binary.Read(
		bytes.NewReader(data), binary.LittleEndian, out); err != nil {
		return fmt.Errorf("decoding packet body: %w", err)
	}
	return nil
}
