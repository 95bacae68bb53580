// Command wfc runs a batch of Wave Function Collapse synthesis jobs
// described by a samples XML file (see internal/config), writing each
// successful screenshot as a PNG under an output directory. Grounded on
// main.cpp's ReadConfigFile/ReadSimpletiled/ReadOverlapping/ReadImagemosaic
// driver loop: per job, up to 10 seeded retries per screenshot, reporting
// progress lines as it goes.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/arcflux/wfc/frontend/imagemosaic"
	"github.com/arcflux/wfc/frontend/overlapping"
	"github.com/arcflux/wfc/frontend/simpletiled"
	"github.com/arcflux/wfc/grid"
	"github.com/arcflux/wfc/image"
	"github.com/arcflux/wfc/internal/config"
	"github.com/arcflux/wfc/internal/imageio"
	"github.com/arcflux/wfc/internal/obslog"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const maxRetriesPerScreenshot = 10

func main() {
	samplesDir := flag.String("samples-dir", "samples", "directory holding Overlapping sample PNGs")
	tilesetsDir := flag.String("tilesets-dir", "tilesets", "directory holding SimpleTiled rules+artwork")
	resourcesDir := flag.String("resources-dir", "resources", "directory holding ImageMosaic rules+artwork")
	outputDir := flag.String("output", "output", "directory to write synthesized PNGs into")
	seedFlag := flag.Int64("seed", 0, "seed for the retry RNG (default: wall-clock)")
	flag.Parse()

	obslog.ConfigureDefault()
	runID := uuid.New()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: wfc [flags] <samples.xml>")
		os.Exit(1)
	}
	jobFile := flag.Arg(0)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	if err := run(jobFile, *samplesDir, *tilesetsDir, *resourcesDir, *outputDir, runID, rng); err != nil {
		log.Error().Str("run_id", runID.String()).Err(err).Msg("run failed")
		os.Exit(1)
	}
	log.Info().Str("run_id", runID.String()).Dur("elapsed", time.Since(start)).Msg("synthesis run finished")
}

func run(jobFile, samplesDir, tilesetsDir, resourcesDir, outputDir string, runID uuid.UUID, rng *rand.Rand) error {
	log.Info().Str("run_id", runID.String()).Str("jobs_file", jobFile).Msg("starting synthesis run")

	f, err := os.Open(jobFile)
	if err != nil {
		return err
	}
	defer f.Close()

	jobs, err := config.ParseJobs(f)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	loader := func(path string) (image.Grid, error) {
		file, err := os.Open(path)
		if err != nil {
			return image.Grid{}, err
		}
		defer file.Close()
		return imageio.Decode(file)
	}

	for _, job := range jobs.Overlapping {
		if err := runOverlapping(job, samplesDir, outputDir, loader, rng); err != nil {
			log.Error().Str("job", job.Name).Err(err).Msg("overlapping job failed")
		}
	}
	for _, job := range jobs.SimpleTiled {
		if err := runSimpleTiled(job, tilesetsDir, outputDir, loader, rng); err != nil {
			log.Error().Str("job", job.Name).Err(err).Msg("simpletiled job failed")
		}
	}
	for _, job := range jobs.ImageMosaic {
		if err := runImageMosaic(job, resourcesDir, outputDir, loader, rng); err != nil {
			log.Error().Str("job", job.Name).Err(err).Msg("imagemosaic job failed")
		}
	}
	return nil
}

// retryExecute runs a front end's synthesis attempt up to
// maxRetriesPerScreenshot times with freshly drawn seeds, logging each
// contradiction, and returns the first successful (image, seed) pair.
func retryExecute(rng *rand.Rand, attempt func(seed int) (image.Grid, bool, error), jobName string, screenshot int) (image.Grid, int, error) {
	for k := 0; k < maxRetriesPerScreenshot; k++ {
		seed := rng.Int()
		out, ok, err := attempt(seed)
		if err != nil {
			return image.Grid{}, 0, err
		}
		if ok {
			return out, seed, nil
		}
		log.Warn().Str("job", jobName).Int("screenshot", screenshot).Int("attempt", k).Msg("contradiction")
	}
	return image.Grid{}, 0, fmt.Errorf("wfc: %s screenshot %d failed after %d attempts", jobName, screenshot, maxRetriesPerScreenshot)
}

func writeOutput(outputDir, name string, seed int, out image.Grid) error {
	path := filepath.Join(outputDir, fmt.Sprintf("%s_%d.png", name, seed))
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return imageio.Encode(file, out)
}

func runOverlapping(job config.OverlappingJob, samplesDir, outputDir string, loader config.ImageLoader, rng *rand.Rand) error {
	log.Info().Str("job", job.Name).Msg("loading overlapping sample")
	sample, err := loader(filepath.Join(samplesDir, job.Name+".png"))
	if err != nil {
		return err
	}

	opts := overlapping.Options{
		PatternSize:    job.PatternSize,
		Symmetry:       job.Symmetry,
		PeriodicInput:  job.PeriodicInput,
		PeriodicOutput: job.PeriodicOutput,
		Ground:         job.Ground,
		OutSize:        grid.NewVec2(job.Height, job.Width),
	}

	for i := 0; i < job.Screenshots; i++ {
		front, err := overlapping.New(sample, opts)
		if err != nil {
			return err
		}
		out, seed, err := retryExecute(rng, front.Execute, job.Name, i)
		if err != nil {
			log.Warn().Str("job", job.Name).Int("screenshot", i).Msg("failed")
			continue
		}
		if err := writeOutput(outputDir, job.Name, seed, out); err != nil {
			return err
		}
		log.Info().Str("job", job.Name).Int("screenshot", i).Msg("done")
	}
	return nil
}

func runSimpleTiled(job config.SimpleTiledJob, tilesetsDir, outputDir string, loader config.ImageLoader, rng *rand.Rand) error {
	rulesPath := filepath.Join(tilesetsDir, job.Name+".xml")
	rulesFile, err := os.Open(rulesPath)
	if err != nil {
		return err
	}
	defer rulesFile.Close()

	tileDir := filepath.Join(tilesetsDir, job.Name)
	tiles, rules, err := config.ResolveSimpleTiled(rulesFile, tileDir, job.Subset, loader)
	if err != nil {
		return err
	}

	opts := simpletiled.Options{PeriodicOutput: job.PeriodicOutput, OutSize: grid.NewVec2(job.Height, job.Width)}
	for i := 0; i < job.Screenshots; i++ {
		front, err := simpletiled.New(tiles, rules, opts)
		if err != nil {
			return err
		}
		out, seed, err := retryExecute(rng, front.Execute, job.Name, i)
		if err != nil {
			log.Warn().Str("job", job.Name).Int("screenshot", i).Msg("failed")
			continue
		}
		if err := writeOutput(outputDir, job.Name, seed, out); err != nil {
			return err
		}
		log.Info().Str("job", job.Name).Int("screenshot", i).Msg("done")
	}
	return nil
}

func runImageMosaic(job config.ImageMosaicJob, resourcesDir, outputDir string, loader config.ImageLoader, rng *rand.Rand) error {
	rulesPath := filepath.Join(resourcesDir, job.Name+".xml")
	rulesFile, err := os.Open(rulesPath)
	if err != nil {
		return err
	}
	defer rulesFile.Close()

	tileDir := filepath.Join(resourcesDir, job.Name)
	tiles, table, err := config.ResolveImageMosaic(rulesFile, tileDir, job.Subset, loader)
	if err != nil {
		return err
	}

	opts := imagemosaic.Options{PeriodicOutput: job.PeriodicOutput, OutSize: grid.NewVec2(job.Height, job.Width)}
	for i := 0; i < job.Screenshots; i++ {
		front, err := imagemosaic.New(tiles, table, opts)
		if err != nil {
			return err
		}
		out, seed, err := retryExecute(rng, front.Execute, job.Name, i)
		if err != nil {
			log.Warn().Str("job", job.Name).Int("screenshot", i).Msg("failed")
			continue
		}
		if err := writeOutput(outputDir, job.Name, seed, out); err != nil {
			return err
		}
		log.Info().Str("job", job.Name).Int("screenshot", i).Msg("done")
	}
	return nil
}
