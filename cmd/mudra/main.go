package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/snapshot"
	"github.com/ayusman/mudra/internal/store"
	"gocv.io/x/gocv"
)

func main() {
	cameraID := flag.Int("camera", 0, "first camera device index to probe")
	httpAddr := flag.String("http", "", "address for the preview server (empty disables it)")
	outputDir := flag.String("output", snapshot.DefaultDir, "directory for saved screenshots")
	maxHands := flag.Int("max-hands", 2, "maximum number of hands to detect")
	flag.Parse()

	printBanner()

	// Snapshot catalog under the home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dataDir, "mudra.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Detection service
	cfg := detector.DefaultConfig()
	cfg.MaxHands = *maxHands
	landmarker, err := detector.NewMediaPipeLandmarker(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize hand landmarker: %v", err)
	}

	// Camera: probe a couple of device indices for one that yields frames
	cam, err := capture.Probe(*cameraID, 2)
	if err != nil {
		log.Fatalf("Failed to open camera: %v", err)
	}

	saver := snapshot.NewSaver(*outputDir, st.Snapshots())

	appCfg := app.Config{
		Camera:     cam,
		Landmarker: landmarker,
		Display:    app.NewWindow(app.DefaultTitle),
		Saver:      saver,
	}

	// Optional HTTP preview surface
	if *httpAddr != "" {
		feed := server.NewFrameFeed()
		landmarks := server.NewLandmarksHandler()

		appCfg.OnFrame = func(frame *gocv.Mat) { feed.Publish(frame) }
		appCfg.OnAdopted = landmarks.Broadcast

		srv := server.New(server.Config{
			Store:     st,
			Feed:      feed,
			Landmarks: landmarks,
		})
		go func() {
			log.Printf("Preview server listening on %s", *httpAddr)
			if err := srv.ListenAndServe(*httpAddr); err != nil {
				log.Printf("Preview server failed: %v", err)
			}
		}()
	}

	a := app.New(appCfg)
	if err := a.Start(); err != nil {
		a.Close()
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.Close()

	// An external interrupt must still release the detector and camera.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Interrupted, shutting down")
		a.RequestStop()
	}()

	fmt.Println("Camera started. Hand landmark detection active...")

	if err := a.Run(); err != nil {
		log.Printf("Frame loop stopped: %v", err)
	}
}

func printBanner() {
	fmt.Println("Mudra - Real-Time Hand Landmark Viewer")
	fmt.Println("Features:")
	fmt.Println("  - MediaPipe 21-point hand detection")
	fmt.Println("  - Real-time multi-hand tracking")
	fmt.Println("  - 3D landmark coordinates")
	fmt.Println("")
	fmt.Println("Controls:")
	fmt.Println("  SPACE - Pause/Resume")
	fmt.Println("  S     - Save screenshot")
	fmt.Println("  C     - Toggle connections")
	fmt.Println("  L     - Toggle landmarks")
	fmt.Println("  Q/ESC - Quit")
}
