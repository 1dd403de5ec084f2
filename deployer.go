package main

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/sanity-io/litter"
	cli "github.com/urfave/cli/v2"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/spring-cloud/spring-cloud-deployer-sub001/bytesize"
	"github.com/spring-cloud/spring-cloud-deployer-sub001/log"
	"github.com/spring-cloud/spring-cloud-deployer-sub001/resource"
	"github.com/spring-cloud/spring-cloud-deployer-sub001/resource/maven"
	"github.com/spring-cloud/spring-cloud-deployer-sub001/types"
	"github.com/spring-cloud/spring-cloud-deployer-sub001/utils"
	"github.com/spring-cloud/spring-cloud-deployer-sub001/version"
)

var (
	configPath string
	logLevel   string
)

func setup(c *cli.Context) (types.Config, error) {
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		return config, err
	}
	if logLevel != "" {
		config.LogLevel = logLevel
	}
	if err := log.SetupLog(config.LogLevel, config.SentryDSN); err != nil {
		return config, err
	}
	return config, nil
}

func parseOptions(c *cli.Context) bytesize.ParseOptions {
	return bytesize.ParseOptions{
		CaseSensitive:    c.Bool("case-sensitive"),
		DecimalAmbiguous: c.Bool("decimal"),
	}
}

func sizeParse(c *cli.Context) error {
	if _, err := setup(c); err != nil {
		return err
	}
	unit, err := bytesize.ParseUnit(c.String("in"))
	if err != nil {
		return err
	}

	opts := parseOptions(c)
	for _, arg := range c.Args().Slice() {
		q, err := bytesize.ParseWithOptions(arg, opts)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%d%s\n", arg, q.In(unit), unit.Suffix())
	}
	return nil
}

func sizeFormat(c *cli.Context) error {
	if _, err := setup(c); err != nil {
		return err
	}
	unit, err := bytesize.ParseUnit(c.String("unit"))
	if err != nil {
		return err
	}

	for _, arg := range c.Args().Slice() {
		count, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return err
		}
		q := bytesize.ByteQuantity(count)
		fmt.Printf("%s\t%s\n", arg, q.Format(c.String("pattern"), unit, !c.Bool("no-suffix")))
	}
	return nil
}

func validate(c *cli.Context) error {
	config, err := setup(c)
	if err != nil {
		return err
	}
	logger := log.WithFunc("validate")

	pool, err := utils.NewPool(config.MaxConcurrency)
	if err != nil {
		return err
	}
	defer pool.Release()

	paths := c.Args().Slice()
	failures := make([]error, len(paths))
	wg := &sync.WaitGroup{}
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		if err := pool.Invoke(func() {
			defer wg.Done()
			failures[i] = validateManifest(c, path, config)
		}); err != nil {
			wg.Done()
			failures[i] = err
		}
	}
	wg.Wait()

	counts := map[string]int{}
	for i, path := range paths {
		if failures[i] != nil {
			logger.Errorf(c.Context, failures[i], "manifest %s is invalid", path)
			counts["invalid"]++
			continue
		}
		logger.Infof(c.Context, "manifest %s is valid", path)
		counts["valid"]++
	}

	for _, key := range sorted(maps.Keys(counts)) {
		fmt.Printf("%s\t%d\n", key, counts[key])
	}

	if failed := utils.Sum(utils.Map(failures, func(err error) int {
		if err != nil {
			return 1
		}
		return 0
	})); failed > 0 {
		return fmt.Errorf("%d of %d manifests invalid", failed, len(paths))
	}
	return nil
}

func validateManifest(c *cli.Context, path string, config types.Config) error {
	logger := log.WithFunc("validateManifest").WithField("manifest", path)

	m, err := types.LoadAppManifest(path)
	if err != nil {
		return err
	}
	opts, err := m.DeployOptions()
	if err != nil {
		return err
	}
	if err := opts.Normalize(config.Deploy); err != nil {
		return err
	}
	opts.ProcessIdent = utils.NewDeployIdent(opts.Name)
	if err := opts.Validate(); err != nil {
		logger.Errorf(c.Context, err, "invalid deploy options %s", litter.Sdump(opts))
		return err
	}
	res, err := resource.Parse(opts.Resource, config)
	if err != nil {
		return err
	}
	logger.Infof(c.Context, "%s uses %s resource %s, memory %s", opts.ProcessIdent, res.Kind(), res.URI(), opts.MemoryLimit)
	return nil
}

func resolve(c *cli.Context) error {
	config, err := setup(c)
	if err != nil {
		return err
	}
	logger := log.WithFunc("resolve")

	uris := c.Args().Slice()
	resolved := make([]string, len(uris))
	failures := make([]error, len(uris))

	wg := &sync.WaitGroup{}
	for i, uri := range uris {
		i, uri := i, uri
		wg.Add(1)
		utils.SentryGo(func() {
			defer wg.Done()
			res, err := resource.Parse(uri, config)
			if err != nil {
				failures[i] = err
				return
			}
			if artifact, ok := res.(*maven.Artifact); ok {
				resolved[i], failures[i] = artifact.Resolve(c.Context)
				return
			}
			resolved[i] = res.URI()
		})
	}
	wg.Wait()

	for i, uri := range uris {
		if failures[i] != nil {
			logger.Errorf(c.Context, failures[i], "cannot resolve %s", uri)
			continue
		}
		fmt.Printf("%s\t%s\n", uri, resolved[i])
	}
	return firstError(failures)
}

func sorted(keys []string) []string {
	slices.Sort(keys)
	return keys
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func main() {
	cli.VersionPrinter = func(_ *cli.Context) {
		fmt.Print(version.String())
		fmt.Print(version.NewEnvironment("local", "v1", version.REVISION))
	}

	app := cli.NewApp()
	app.Name = version.NAME
	app.Usage = "Interpret sizes, validate app manifests and resolve resource URIs"
	app.Version = version.VERSION
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "config file path for deployer, in yaml",
			Destination: &configPath,
			EnvVars:     []string{"DEPLOYER_CONFIG_PATH"},
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "override the configured log level",
			Destination: &logLevel,
			EnvVars:     []string{"DEPLOYER_LOG_LEVEL"},
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:  "size",
			Usage: "parse and format human readable byte quantities",
			Subcommands: []*cli.Command{
				{
					Name:      "parse",
					Usage:     "parse size strings into counts at a unit",
					ArgsUsage: "SIZE [SIZE...]",
					Action:    sizeParse,
					Flags: []cli.Flag{
						&cli.BoolFlag{
							Name:  "decimal",
							Usage: "read ambiguous suffixes like kB as 1000 based",
						},
						&cli.BoolFlag{
							Name:  "case-sensitive",
							Usage: "only accept canonical SI spellings",
						},
						&cli.StringFlag{
							Name:  "in",
							Value: "B",
							Usage: "unit of the printed count",
						},
					},
				},
				{
					Name:      "format",
					Usage:     "format raw byte counts for humans",
					ArgsUsage: "BYTES [BYTES...]",
					Action:    sizeFormat,
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "unit",
							Value: "B",
							Usage: "unit to render at",
						},
						&cli.StringFlag{
							Name:  "pattern",
							Value: "#",
							Usage: "decimal pattern, e.g. #.######",
						},
						&cli.BoolFlag{
							Name:  "no-suffix",
							Usage: "drop the unit suffix",
						},
					},
				},
			},
		},
		{
			Name:      "validate",
			Usage:     "validate app manifests against the deploy defaults",
			ArgsUsage: "MANIFEST [MANIFEST...]",
			Action:    validate,
		},
		{
			Name:      "resolve",
			Usage:     "resolve resource URIs to canonical or local form",
			ArgsUsage: "URI [URI...]",
			Action:    resolve,
		},
	}
	defer log.SentryDefer()
	_ = app.Run(os.Args)
}
