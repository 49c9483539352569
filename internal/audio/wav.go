package audio

import (
	"bytes"
	"encoding/binary"
)

// TTS output format: 16-bit PCM, mono, 24kHz
const (
	SampleRate  = 24000
	NumChannels = 1
	BitsPerSamp = 16
)

// EncodeWAV frames raw little-endian PCM16 samples as a WAV clip
func EncodeWAV(pcm []byte, sampleRate, numChannels int) []byte {
	blockAlign := numChannels * BitsPerSamp / 8
	byteRate := sampleRate * blockAlign

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(numChannels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(BitsPerSamp))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}
