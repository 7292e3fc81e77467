package session

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/disgoorg/json"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/nightfall/internal"
	"github.com/oomph-ac/nightfall/oerror"
	"github.com/oomph-ac/nightfall/player"
	"github.com/oomph-ac/nightfall/settings"
	"github.com/zeebo/xxh3"
)

const CurrentRecordingVer = "1"

// Header is the first line of a recording after the version. It holds everything needed to set up
// an identical run.
type Header struct {
	Settings settings.Settings
	Spawn    mgl32.Vec3
	Yaw      float32
}

// Frame is a single recorded tick: the input fed to the player and a checksum of the state it
// produced.
type Frame struct {
	Tick     uint64
	Input    player.InputState
	Checksum uint64
}

// Recording is a decoded recording file.
type Recording struct {
	Version string
	Header  Header
	Frames  []Frame
}

// Recorder writes ticks to a recording as they are simulated.
type Recorder struct {
	w      *bufio.Writer
	closer io.Closer
	frames int
}

// NewRecorder starts a recording on w. If w is an io.Closer, it is closed with the recorder.
func NewRecorder(w io.Writer, header Header) (*Recorder, error) {
	r := &Recorder{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}

	// The version goes first so that replays know how to decode the rest of the recording.
	if _, err := r.w.WriteString(CurrentRecordingVer + "\n"); err != nil {
		return nil, err
	}
	if err := r.writeLine(header); err != nil {
		return nil, fmt.Errorf("unable to encode recording header: %w", err)
	}
	return r, nil
}

// CreateRecorder starts a recording in the given file, replacing any existing recording.
func CreateRecorder(file string, header Header) (*Recorder, error) {
	os.Remove(file)
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, oerror.New("unable to open recording file: %v", err)
	}
	r, err := NewRecorder(f, header)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// Record adds a tick to the recording. Skipped ticks do not change the state and are left out.
func (r *Recorder) Record(input player.InputState, res player.TickResult) error {
	if res.Outcome == player.OutcomeSkipped {
		return nil
	}
	r.frames++
	return r.writeLine(Frame{Tick: res.Tick, Input: input, Checksum: Checksum(res.State)})
}

// Frames returns the amount of ticks recorded so far.
func (r *Recorder) Frames() int {
	return r.frames
}

// Close flushes the recording and closes the underlying writer.
func (r *Recorder) Close() error {
	if err := r.w.Flush(); err != nil {
		return err
	}
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

func (r *Recorder) writeLine(v any) error {
	enc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(enc); err != nil {
		return err
	}
	return r.w.WriteByte('\n')
}

// DecodeRecordingFile decodes the recording in the given file.
func DecodeRecordingFile(file string) (*Recording, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, oerror.New("unable to open recording file: %v", err)
	}
	defer f.Close()
	return DecodeRecording(f)
}

// DecodeRecording decodes a recording into a Recording. It returns an error if the recording could not
// be parsed, or if the version of the recording is not supported.
func DecodeRecording(rd io.Reader) (*Recording, error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	rec := &Recording{}
	if !sc.Scan() {
		return nil, oerror.New("recording is empty")
	}
	rec.Version = sc.Text()
	if rec.Version != CurrentRecordingVer {
		return nil, oerror.New("unsupported recording version: %s", rec.Version)
	}

	if !sc.Scan() {
		return nil, oerror.New("recording has no header")
	}
	if err := json.Unmarshal(sc.Bytes(), &rec.Header); err != nil {
		return nil, oerror.New("unable to decode recording header: %v", err)
	}

	for line := 3; sc.Scan(); line++ {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var f Frame
		if err := json.Unmarshal(sc.Bytes(), &f); err != nil {
			return nil, oerror.New("unable to decode frame on line %d: %v", line, err)
		}
		rec.Frames = append(rec.Frames, f)
	}
	if err := sc.Err(); err != nil {
		return nil, oerror.New("unable to read recording: %v", err)
	}
	return rec, nil
}

// Checksum hashes the parts of the state that a deterministic replay must reproduce exactly.
func Checksum(s player.State) uint64 {
	bufPtr := internal.BufferPool.Get().(*[]byte)
	buf := (*bufPtr)[:0]
	defer func() {
		*bufPtr = buf
		internal.BufferPool.Put(bufPtr)
	}()

	floats := func(vs ...float32) {
		for _, v := range vs {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
		}
	}
	bools := func(vs ...bool) {
		for _, v := range vs {
			b := byte(0)
			if v {
				b = 1
			}
			buf = append(buf, b)
		}
	}

	floats(s.Position[:]...)
	floats(s.Velocity[:]...)
	floats(s.MoveDir[:]...)
	floats(s.Orientation.Yaw, s.Orientation.Pitch, s.CurrentSpeed, s.CapsuleHeight)
	floats(s.Stamina.Current, s.Stamina.LastSprint, s.Sanity.Current)
	buf = append(buf, byte(s.Mode), byte(s.Look.Mode))
	bools(s.Sprinting, s.Grounded, s.ControlLocked, s.Look.Active)
	return xxh3.Hash(buf)
}
