package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/midbel/fplot"
	"github.com/midbel/fplot/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configFile string
	verbose    bool
	logLevel   string
	outFile    string
	samples    int
	workers    int
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "fplot",
	Short: "Sample and draw mathematical functions",
	Long: `fplot samples the functions described in a chart file (linear, parametric,
polar, point sets and vectors) and writes them as json segments or as an svg chart.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Usage()
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the sampled segments of each function as json",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, plot, err := loadPlot(cmd)
		if err != nil {
			return err
		}
		return writeOutput(func(w io.Writer) error {
			return writeSeries(w, plot.Draw())
		})
	},
}

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Render the functions as an svg chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, plot, err := loadPlot(cmd)
		if err != nil {
			return err
		}
		chart := cfg.Chart(plot.X, plot.Y)
		return writeOutput(func(w io.Writer) error {
			return chart.Render(w, plot.X, plot.Y, plot.Draw()...)
		})
	},
}

func init() {
	if err := initFlags(rootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Fatal("flags not bound")
	}

	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(drawCmd)
}

func initFlags(fs *pflag.FlagSet) error {
	fs.StringVar(&configFile, "config", "", "Chart file (toml, yaml or json)")
	fs.BoolVar(&verbose, "verbose", false, "Print detailed execution info")
	fs.StringVar(&logLevel, "log-level", "info", "Log verbosity level")
	fs.StringVar(&outFile, "file", "", "Write output to file instead of stdout")
	fs.IntVar(&samples, "samples", fplot.DefaultSamples, "Number of samples per function")
	fs.IntVar(&workers, "workers", 0, "Number of functions sampled at the same time")

	viper.SetEnvPrefix("fplot")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return viper.BindPFlags(fs)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger() error {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if viper.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
		return nil
	}
	lvl, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

func loadPlot(cmd *cobra.Command) (config.Config, *fplot.Plot, error) {
	file := viper.GetString("config")
	if file == "" {
		return config.Config{}, nil, fmt.Errorf("no chart file given (use --config)")
	}
	if !config.IsSupported(file) {
		return config.Config{}, nil, fmt.Errorf("%s: unsupported file format", file)
	}
	cfg, err := config.Load(file)
	if err != nil {
		return cfg, nil, err
	}
	if cmd.Flags().Changed("samples") || cfg.Samples <= 0 {
		cfg.Samples = viper.GetInt("samples")
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = viper.GetInt("workers")
	}
	plot, err := cfg.Plot()
	if plot == nil {
		return cfg, nil, err
	}
	if err != nil {
		log.WithError(err).Warn("some functions are not drawn")
	}
	plot.Logger = log
	log.WithFields(logrus.Fields{
		"file":      file,
		"functions": len(plot.Functions),
		"samples":   cfg.Samples,
	}).Debug("chart loaded")
	return cfg, plot, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

func output() (io.WriteCloser, error) {
	file := viper.GetString("file")
	if file == "" || file == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(file)
}

func writeOutput(write func(io.Writer) error) (err error) {
	w, err := output()
	if err != nil {
		return err
	}
	defer func() {
		if e := w.Close(); err == nil {
			err = e
		}
	}()
	return write(w)
}

type serieOutput struct {
	Id       string        `json:"id"`
	Kind     string        `json:"kind"`
	Closed   bool          `json:"closed,omitempty"`
	Segments [][][]float64 `json:"segments"`
	Error    string        `json:"error,omitempty"`
}

func writeSeries(w io.Writer, series []fplot.Serie) error {
	list := make([]serieOutput, 0, len(series))
	for _, s := range series {
		out := serieOutput{
			Id:       s.Id,
			Kind:     s.Kind.String(),
			Closed:   s.Closed,
			Segments: make([][][]float64, 0, len(s.Segments)),
		}
		if s.Err != nil {
			out.Error = s.Err.Error()
		}
		for _, g := range s.Segments {
			pts := make([][]float64, 0, len(g))
			for _, p := range g {
				if !p.IsFinite() {
					continue
				}
				pts = append(pts, []float64{p.X, p.Y})
			}
			out.Segments = append(out.Segments, pts)
		}
		list = append(list, out)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
