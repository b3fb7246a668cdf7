package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	log "github.com/sirupsen/logrus"

	"psicro/ashrae"
	"psicro/batch"
	"psicro/history"
	"psicro/psychro"
	"psicro/server"
)

const usage = `usage: psicro [-config psicro.ini] <command> [flags]

commands:
  eval      evaluate properties from two known ones
  batch     evaluate a CSV file of known values
  serve     start the websocket server
  altitude  check an altitude and show its pressure
  history   show recent runs
  help      usage guide
  units     unit table
  info      version
`

/*
値の並びをセル範囲に変換する。

	Args:
		s: 行は ";" 区切り、列は空白区切りの値。小数点にはカンマも使える

	Returns:
		N x M の範囲。"20;26" は 2 x 1 の列、"40 50 60" は 1 x 3 の行
*/
func parseValues(s string) psychro.Range {
	lines := strings.Split(s, ";")
	cells := make([][]psychro.Cell, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			cells[i] = []psychro.Cell{psychro.Blank()}
			continue
		}
		cells[i] = make([]psychro.Cell, len(fields))
		for j, f := range fields {
			cells[i][j] = psychro.Text(f)
		}
	}
	return psychro.NewRange(cells)
}

// printGrid writes the grid as a tab-aligned table with a header row.
func printGrid(out io.Writer, g *psychro.Grid) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for c, p := range g.Targets() {
		if c > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprintf(w, "%s [%s]", p, psychro.UnitLabel(p, g.Unit()))
	}
	fmt.Fprintln(w)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, g.Token(r, c))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

type app struct {
	cfg  Config
	e    *psychro.Evaluator
	hist *history.DB
	out  io.Writer
}

/*
計算器を準備する。

	Notes:
		履歴が有効で高度が記録されていれば、設定ファイルの高度より優先する。
*/
func newApp(cfg Config, out io.Writer) (*app, error) {
	e, err := psychro.New(ashrae.New(),
		psychro.WithLogger(log.StandardLogger()),
		psychro.WithParseFailurePolicy(cfg.ParseFailure),
	)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, e: e, out: out}

	altitude, unit := cfg.Altitude, cfg.AltitudeUnit
	if cfg.HistoryEnabled {
		a.hist, err = history.Open(cfg.HistoryPath, log.StandardLogger())
		if err != nil {
			return nil, err
		}
		last, err := a.hist.LastAltitude()
		switch {
		case err == nil:
			altitude, unit = last.Altitude, psychro.ParseUnitSystem(last.Unit)
		case !errors.Is(err, history.ErrNoAltitude):
			log.WithError(err).Warn("last altitude not restored")
		}
	}

	if _, err := e.SetAltitude(altitude, unit); err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

func (a *app) close() {
	if a.hist != nil {
		a.hist.Close()
	}
}

func (a *app) record(p1, p2 string, g *psychro.Grid) {
	if a.hist == nil {
		return
	}
	if _, err := a.hist.RecordRun(p1, p2, g); err != nil {
		log.WithError(err).Warn("run not recorded")
	}
}

func (a *app) run(cmd string, args []string) error {
	switch cmd {
	case "eval":
		return a.eval(args)
	case "batch":
		return a.batch(args)
	case "serve":
		return a.serve(args)
	case "altitude":
		return a.altitude(args)
	case "history":
		return a.history(args)
	case "help":
		fmt.Fprint(a.out, psychro.Help())
	case "units":
		fmt.Fprint(a.out, psychro.UnitsInfo())
	case "info":
		fmt.Fprint(a.out, psychro.Info())
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (a *app) eval(args []string) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	p1 := fs.String("p1", "", "既知の状態量 1 の記号")
	v1 := fs.String("v1", "", "状態量 1 の値 (行は \";\"、列は空白で区切る)")
	p2 := fs.String("p2", "", "既知の状態量 2 の記号")
	v2 := fs.String("v2", "", "状態量 2 の値 (行は \";\"、列は空白で区切る)")
	target := fs.String("target", "all", "求める状態量 (\",\" 区切り、または all)")
	unit := fs.String("unit", a.cfg.Unit.String(), "単位系 SI または IP")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := a.e.Evaluate(*p1, parseValues(*v1), *p2, parseValues(*v2), *target, psychro.ParseUnitSystem(*unit))
	if err != nil {
		return err
	}
	a.record(*p1, *p2, g)
	return printGrid(a.out, g)
}

func (a *app) batch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	in := fs.String("in", "", "入力 CSV (列 v1, v2)")
	outPath := fs.String("o", "", "出力 CSV。省略時は標準出力")
	p1 := fs.String("p1", "", "v1 列の状態量の記号")
	p2 := fs.String("p2", "", "v2 列の状態量の記号")
	target := fs.String("target", "all", "求める状態量")
	unit := fs.String("unit", a.cfg.Unit.String(), "単位系 SI または IP")
	if err := fs.Parse(args); err != nil {
		return err
	}

	start := time.Now()
	v1, v2, err := batch.ReadFile(*in)
	if err != nil {
		return err
	}
	g, err := a.e.Evaluate(*p1, v1, *p2, v2, *target, psychro.ParseUnitSystem(*unit))
	if err != nil {
		return err
	}
	a.record(*p1, *p2, g)

	if *outPath == "" {
		err = batch.Write(a.out, g)
	} else {
		err = batch.WriteFile(*outPath, g)
	}
	if err != nil {
		return err
	}

	for _, s := range batch.Summarize(g) {
		log.WithFields(log.Fields{
			"target": s.Target,
			"count":  s.Count,
			"failed": s.Failed,
			"min":    s.Min,
			"max":    s.Max,
			"mean":   s.Mean,
		}).Info("column summary")
	}
	log.WithField("elapsed", time.Since(start)).Info("batch done")
	return nil
}

func (a *app) serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", a.cfg.Addr, "待ち受けアドレス")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s := server.New(*addr, a.e, log.StandardLogger())
	if a.hist != nil {
		s.SetRecorder(a.hist)
	}
	return s.Serve()
}

func (a *app) altitude(args []string) error {
	fs := flag.NewFlagSet("altitude", flag.ContinueOnError)
	unit := fs.String("unit", a.cfg.AltitudeUnit.String(), "高度の単位系 SI (m) または IP (ft)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("altitude: expected one value")
	}
	altitude, err := strconv.ParseFloat(strings.ReplaceAll(fs.Arg(0), ",", "."), 64)
	if err != nil {
		return fmt.Errorf("altitude: %w", err)
	}

	u := psychro.ParseUnitSystem(*unit)
	p, err := a.e.SetAltitude(altitude, u)
	fmt.Fprintln(a.out, psychro.AltitudeStatus(altitude, u, p, err))
	if err != nil {
		return err
	}
	if a.hist != nil {
		return a.hist.RecordAltitude(altitude, u, p)
	}
	return nil
}

func (a *app) history(args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	n := fs.Int("n", 10, "表示する件数")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if a.hist == nil {
		return errors.New("history is disabled, set [history] enabled = true")
	}

	runs, err := a.hist.RecentRuns(*n)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "time\tp1\tp2\ttargets\tunit\tkPa\trows\tfailed")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.3f\t%d\t%d\n",
			time.Unix(0, r.CreatedAt).Format(time.DateTime), r.P1, r.P2, r.Targets, r.Unit, r.Pressure, r.Rows, r.Failed)
	}
	return w.Flush()
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "psicro.ini", "設定ファイル")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}

	// 引数を受け取る
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}
	setupLogging(cfg)

	cmd := "help"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	a, err := newApp(cfg, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	defer a.close()

	if err := a.run(cmd, flag.Args()[min(1, flag.NArg()):]); err != nil {
		a.close()
		log.Fatal(err)
	}
}
