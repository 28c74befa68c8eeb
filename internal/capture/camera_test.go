package capture

import "testing"

func TestNewCamera(t *testing.T) {
	cam := NewCamera(0)

	if cam == nil {
		t.Fatal("NewCamera returned nil")
	}

	// Camera should not be running initially
	if cam.IsOpen() {
		t.Error("camera should not be running initially")
	}
}

func TestCamera_ReadFrameNotOpen(t *testing.T) {
	cam := NewCamera(0)

	_, err := cam.ReadFrame()
	if err != ErrCameraNotOpen {
		t.Errorf("ReadFrame() error = %v, want %v", err, ErrCameraNotOpen)
	}
}

func TestCamera_CloseWhenNotOpen(t *testing.T) {
	cam := NewCamera(0)

	if err := cam.Close(); err != nil {
		t.Errorf("Close() on unopened camera error = %v, want nil", err)
	}
	if cam.IsOpen() {
		t.Error("camera should remain closed")
	}
}
