// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command fmp queries the Financial Modeling Prep API from the command line.
//
//	fmp endpoints [group]
//	fmp call quote.real-time symbol=AAPL,MSFT
//	fmp get historical-price-eod/light symbol=AAPL from=2024-01-02
//	fmp history --from 2024-01-02 AAPL MSFT
//
// The API key is taken from --key, the config file (~/.fmp/config.toml) or the
// FMP_API_KEY environment variable, in that order.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/fmp/api"
	"github.com/stockparfait/fmp/config"
	"github.com/stockparfait/fmp/date"
	"github.com/stockparfait/fmp/legacy"
	"github.com/stockparfait/fmp/stable"
	"github.com/stockparfait/fmp/table"
	"github.com/stockparfait/iterator"
	"github.com/stockparfait/logging"
	"gopkg.in/yaml.v3"
)

// Output formats.
var formats = []string{"json", "yaml", "csv", "text", "grid", "simple", "plain"}

type app struct {
	v      *viper.Viper
	out    io.Writer
	lookup func(string) (string, bool) // environment
	ctx    context.Context
}

func newCommand(out io.Writer, lookup func(string) (string, bool)) *cobra.Command {
	a := &app{v: viper.New(), out: out, lookup: lookup}
	root := &cobra.Command{
		Use:           "fmp",
		Short:         "Query the Financial Modeling Prep API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level logging.Level
			if err := level.Set(a.v.GetString("log-level")); err != nil {
				return api.NewError(api.ValidationFailure, "invalid log level '%s'", a.v.GetString("log-level"))
			}
			if f := a.v.GetString("format"); !slices.Contains(formats, f) {
				return api.NewError(api.ValidationFailure, "unknown format '%s', expected one of: %s",
					f, strings.Join(formats, ", "))
			}
			a.ctx = logging.Use(cmd.Context(), logging.DefaultGoLogger(level))
			return nil
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ~/.fmp/config.toml, optional)")
	pf.String("key", "", "FMP API key")
	pf.String("base-url", "", "API base URL of the selected generation")
	pf.Bool("legacy", false, "use the legacy (/api/v3/) API generation")
	pf.String("log-level", "info", "log level: debug, info, warning, error")
	pf.String("format", "json", "output format: "+strings.Join(formats, ", "))
	pf.String("select", "", "gjson path selecting a part of a JSON response")
	pf.String("describe", "", "print a numeric summary of the column instead of the data")
	pf.Int("rows", 0, "max. number of rows in csv and text output; 0 = all")

	// Flags may also be set as FMP_<FLAG> environment variables,
	// e.g. FMP_FORMAT=csv.
	a.v.SetEnvPrefix("FMP")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlags(pf)

	root.AddCommand(a.endpointsCmd(), a.callCmd(), a.getCmd(), a.historyCmd())
	return root
}

func (a *app) legacy() bool { return a.v.GetBool("legacy") }

// apiConfig merges the config file, the flags and the environment.
func (a *app) apiConfig(legacy bool) (api.Config, error) {
	path := a.v.GetString("config")
	mustExist := path != ""
	if path == "" {
		path = filepath.Join(config.DefaultDir(), config.FileName)
	}
	c, err := config.Load(path, mustExist)
	if err != nil {
		return api.Config{}, err
	}
	if k := a.v.GetString("key"); k != "" {
		c.Key = k
	}
	if u := a.v.GetString("base-url"); u != "" {
		if legacy {
			c.LegacyBaseURL = u
		} else {
			c.BaseURL = u
		}
	}
	return c.API(legacy, a.lookup)
}

func (a *app) client(legacy bool) (*api.Client, error) {
	cfg, err := a.apiConfig(legacy)
	if err != nil {
		return nil, err
	}
	return api.New(cfg)
}

func (a *app) endpoints() api.Endpoints {
	if a.legacy() {
		return legacy.Endpoints
	}
	return stable.Endpoints
}

// parseArgs converts "name=value" arguments into api.Args.
func parseArgs(kvs []string) (api.Args, error) {
	args := make(api.Args)
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, api.NewError(api.ValidationFailure, "argument '%s' is not name=value", kv)
		}
		if _, ok := args[k]; ok {
			return nil, api.NewError(api.ValidationFailure, "duplicate argument '%s'", k)
		}
		args[k] = v
	}
	return args, nil
}

func (a *app) tableFormat() bool {
	switch a.v.GetString("format") {
	case "json", "yaml":
		return false
	}
	return true
}

func (a *app) endpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints [group]",
		Short: "List the endpoints as group.name with their parameters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			es := a.endpoints()
			if len(args) > 0 {
				es = es.Group(args[0])
				if len(es) == 0 {
					return api.NewError(api.ValidationFailure, "unknown group '%s'", args[0])
				}
			}
			t := table.NewTable("name", "path", "params", "doc")
			for _, e := range es {
				t.AddRow(table.Row{e.FullName(), e.Path, e.Usage(), e.Doc})
			}
			return a.write(&api.Response{Table: t})
		},
	}
}

func (a *app) callCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <group.name> [name=value...]",
		Short: "Call an endpoint by name, see 'fmp endpoints'",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := a.endpoints().Lookup(args[0])
			if !ok {
				return api.NewError(api.ValidationFailure, "unknown endpoint '%s'", args[0])
			}
			kv, err := parseArgs(args[1:])
			if err != nil {
				return err
			}
			c, err := a.client(a.legacy())
			if err != nil {
				return err
			}
			res, err := c.Call(a.ctx, e, kv, a.tableFormat())
			if err != nil {
				return err
			}
			return a.write(res)
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <path> [name=value...]",
		Short: "GET an arbitrary endpoint path relative to the base URL",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			csv, err := cmd.Flags().GetBool("csv")
			if err != nil {
				return err
			}
			kv, err := parseArgs(args[1:])
			if err != nil {
				return err
			}
			c, err := a.client(a.legacy())
			if err != nil {
				return err
			}
			res, err := c.Execute(a.ctx, &api.Request{Path: args[0], Args: kv, Table: csv})
			if err != nil {
				return err
			}
			return a.write(res)
		},
	}
	cmd.Flags().Bool("csv", false, "expect a CSV response")
	return cmd
}

type history struct {
	symbol string
	table  *table.Table
	err    error
}

func (a *app) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <symbol...>",
		Short: "Daily prices of several symbols, fetched concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := dateRange(cmd)
			if err != nil {
				return err
			}
			jobs, err := cmd.Flags().GetInt("jobs")
			if err != nil {
				return err
			}
			if jobs <= 0 {
				jobs = runtime.NumCPU()
			}
			c, err := a.client(false)
			if err != nil {
				return err
			}
			t, err := fetchHistory(a.ctx, stable.Wrap(c), args, from, to, jobs)
			if err != nil {
				return err
			}
			return a.write(&api.Response{Table: t})
		},
	}
	cmd.Flags().String("from", "", "first date, YYYY-MM-DD")
	cmd.Flags().String("to", "", "last date, YYYY-MM-DD")
	cmd.Flags().Int("jobs", 0, "max. concurrent requests (default: number of CPUs)")
	return cmd
}

func dateRange(cmd *cobra.Command) (from, to date.Date, err error) {
	parse := func(name string) (date.Date, error) {
		s, err := cmd.Flags().GetString(name)
		if err != nil || s == "" {
			return date.Date{}, err
		}
		d, err := date.NewDateFromString(s)
		if err != nil {
			return date.Date{}, &api.Error{Kind: api.ValidationFailure,
				Err: errors.Annotate(err, "invalid --%s", name)}
		}
		return d, nil
	}
	if from, err = parse("from"); err != nil {
		return
	}
	to, err = parse("to")
	return
}

// fetchHistory requests the full price history of each symbol with at most
// jobs requests in flight, and stacks the results in the order of symbols.
func fetchHistory(ctx context.Context, c *stable.Client, symbols []string, from, to date.Date, jobs int) (*table.Table, error) {
	f := func(symbol string) history {
		res, err := c.Chart.Full(ctx, symbol, from, to, true)
		if err != nil {
			return history{symbol: symbol, err: err}
		}
		logging.Debugf(ctx, "%s: %d prices", symbol, res.Table.Len())
		return history{symbol: symbol, table: res.Table}
	}
	pm := iterator.ParallelMap(ctx, jobs, iterator.FromSlice(symbols), f)

	bySymbol := iterator.Reduce[history, map[string]history](pm, map[string]history{},
		func(h history, m map[string]history) map[string]history {
			m[h.symbol] = h
			return m
		})
	var tables []*table.Table
	for _, s := range symbols {
		h := bySymbol[s]
		if h.err != nil {
			return nil, errors.Annotate(h.err, "failed to fetch prices for %s", s)
		}
		tables = append(tables, h.table)
	}
	return table.Concat(tables...), nil
}

// write the response to the output in the selected format.
func (a *app) write(res *api.Response) error {
	if sel := a.v.GetString("select"); sel != "" {
		r := res.Get(sel)
		if !r.Exists() {
			return api.NewError(api.ValidationFailure, "nothing at '%s' in the response", sel)
		}
		res = &api.Response{JSON: r.Value(), Raw: []byte(r.Raw)}
	}
	format := a.v.GetString("format")
	if col := a.v.GetString("describe"); col != "" {
		t, err := res.ToTable()
		if err != nil {
			return err
		}
		s, err := t.Describe(col)
		if err != nil {
			return api.NewError(api.ValidationFailure, "cannot describe: %s", err.Error())
		}
		if format == "json" {
			return a.writeJSON(s)
		}
		return a.writeYAML(s)
	}
	switch format {
	case "json", "yaml":
		v := res.JSON
		if res.Table != nil {
			v = res.Table.Records()
		}
		if format == "json" {
			return a.writeJSON(v)
		}
		return a.writeYAML(v)
	}
	t, err := res.ToTable()
	if err != nil {
		return err
	}
	p := table.Params{Rows: a.v.GetInt("rows")}
	switch format {
	case "csv":
		return t.WriteCSV(a.out, p)
	case "text":
		return t.WriteText(a.out, p)
	default:
		_, err := fmt.Fprint(a.out, t.Render(format, p))
		return err
	}
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Annotate(err, "failed to write JSON")
	}
	return nil
}

func (a *app) writeYAML(v any) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Annotate(err, "failed to write YAML")
	}
	return enc.Close()
}

func main() {
	ctx := context.Background()
	if err := newCommand(os.Stdout, os.LookupEnv).ExecuteContext(ctx); err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "%s", err.Error())
		os.Exit(1)
	}
}
