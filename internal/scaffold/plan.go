package scaffold

import (
	"fmt"
	"strings"

	"github.com/enzojs/enzo/generator"
	"github.com/enzojs/enzo/internal/installer"
	"github.com/enzojs/enzo/manifest"
	"github.com/enzojs/enzo/project"
	"github.com/enzojs/enzo/templates"
)

// InitialVersion is the package.json version of a new project.
const InitialVersion = "0.1.0"

// Script is a package.json script together with a line of help.
type Script struct {
	Name string
	Body string
	Help string
}

// plan accumulates operations; the first template error sticks.
type plan struct {
	opts    Options
	pm      project.PackageManager
	src     *templates.Source
	data    templates.Data
	deps    *project.Dependencies
	ops     []generator.Operation
	scripts []Script
	err     error
}

func newPlan(src *templates.Source, deps *project.Dependencies, opts Options, pm project.PackageManager) *plan {
	return &plan{
		opts: opts,
		pm:   pm,
		src:  src,
		deps: deps,
		data: templates.Data{
			Name:  opts.Name,
			Stack: opts.Stack(),
			Run:   installer.RunPrefix(pm),
		},
	}
}

func (p *plan) add(ops ...generator.Operation) {
	p.ops = append(p.ops, ops...)
}

func (p *plan) mkdir(paths ...string) {
	p.add(&generator.FoldersOp{Paths: paths, IfMissing: p.opts.AllowExisting})
}

func (p *plan) file(path, content string) {
	p.add(&generator.WriteFileOp{Path: path, Content: content})
}

// render writes template id to path.
func (p *plan) render(path, id string) {
	if p.err != nil {
		return
	}
	content, err := p.src.Render(id, p.data)
	if err != nil {
		p.err = fmt.Errorf("failed to render %s: %w", path, err)
		return
	}
	p.file(path, content)
}

func (p *plan) script(name, body, help string) {
	p.scripts = append(p.scripts, Script{Name: name, Body: body, Help: help})
	p.add(&generator.ScriptOp{Name: name, Body: body})
}

// common creates the files every project gets.
func (p *plan) common() {
	p.add(&generator.MkdirOp{IfMissing: p.opts.AllowExisting})
	p.render(".gitignore", "common/gitignore")
	p.render("README.md", "common/README.md")
	p.render(generator.ManifestFile, "common/package.json")
	p.add(&generator.ManifestOp{
		Summary: "name and version",
		Patch: func(m *manifest.Manifest) error {
			if err := m.SetName(p.opts.Name); err != nil {
				return err
			}
			return m.SetVersion(InitialVersion)
		},
	})
	p.file(".env", "")
	p.add(&generator.ScriptsFolderOp{})
}

func (p *plan) react() {
	p.mkdir("dist", "src", "src/App")
	if p.opts.Redux {
		p.render("src/index.js", "redux/index.js")
	} else {
		p.render("src/index.js", "react/index.js")
	}
	p.render("src/App/App.js", "react/App.js")
	p.render("src/App/App.css", "react/App.css")
	p.render("webpack.config.js", "react/webpack.config.js")
	p.render(".babelrc", "react/babelrc")

	if p.opts.Backend == "" {
		p.render("index.html", "react/index.html")
		p.script("start", "webpack-dev-server --output-public-path=/dist/ --inline --hot --open --port 3000 --mode='development'", "start the development server")
		p.deps.Add(project.Dev, "webpack-dev-server")
	} else {
		p.add(&generator.AppendOp{
			Path:    "src/index.js",
			Content: "\nif (module.hot) {\n\tconsole.clear()\n\tmodule.hot.accept()\n}\n",
		})
	}
	p.script("dev", "webpack --watch --mode='development'", "rebuild the frontend on change")
	p.script("build", "webpack --mode='production'", "build the frontend for production")

	p.render("scripts/component.js", "scripts/component.js")
	p.render(templates.OverrideDir+"/statelessComponent.js", "scripts/statelessComponent.js")
	p.script("component", "node scripts/component.js", "create a component: "+p.data.Run+" component <Name>")

	p.deps.Add(project.Prod, "react react-dom")
	p.deps.Add(project.Dev, "webpack webpack-cli babel-loader css-loader style-loader @babel/core @babel/preset-env @babel/preset-react")
}

// redux adds a store and moves the App component under containers.
func (p *plan) redux() {
	p.render("src/App/AppContainer.js", "redux/AppContainer.js")
	p.mkdir("src/containers", "src/containers/App")
	p.add(&generator.MoveDirOp{From: "src/App", To: "src/containers/App"})

	p.mkdir("src/actions", "src/reducers")
	p.file("src/actions/index.js", "")
	p.render("src/reducers/rootReducer.js", "redux/rootReducer.js")
	p.render("src/configStore.js", "redux/configStore.js")

	p.deps.Add(project.Prod, "redux react-redux")
}

func (p *plan) express() {
	p.mkdir("server")
	p.render("server/server.js", "express/server.js")
	p.render("server/routes.js", "express/routes.js")
	p.script("start", "node server/server.js", "start the server")
	p.script("server", "nodemon server/server.js", "run the server and restart it on change")

	p.deps.Add(project.Prod, "express body-parser helmet compression morgan")
	p.deps.Add(project.Dev, "nodemon")
}

func (p *plan) database() {
	p.mkdir("db")
	p.render("db/index.js", "database/"+p.opts.Database+".js")

	switch p.opts.Database {
	case "postgres":
		p.add(&generator.AppendOp{Path: ".env", Content: "DATABASE_URL=\n"})
		p.deps.Add(project.Prod, "pg")
	case "mongo":
		p.add(&generator.AppendOp{Path: ".env", Content: "MONGO_URL=\n"})
		p.deps.Add(project.Prod, "mongoose")
	}

	if p.opts.Backend == "express" {
		p.add(&generator.InsertOp{Path: "server/server.js", Content: "require('dotenv').config()", At: generator.AtLine(0)})
		p.deps.Add(project.Prod, "dotenv")
	}
}

// jestConfig mirrors the parts of jest.config.json enzo edits.
type jestConfig struct {
	TestEnvironment string   `json:"testEnvironment"`
	Roots           []string `json:"roots"`
	CollectCoverage bool     `json:"collectCoverage"`
}

func (p *plan) jest() {
	p.mkdir("test")
	p.render("test/sample.test.js", "jest/sample.test.js")

	var cfg jestConfig
	if err := p.src.LoadJSON("jest/jest.config.json", &cfg); err != nil && p.err == nil {
		p.err = err
	}
	roots := cfg.Roots[:0]
	for _, r := range cfg.Roots {
		switch {
		case r == "<rootDir>/src" && p.opts.Frontend == "":
		case r == "<rootDir>/server" && p.opts.Backend == "":
		default:
			roots = append(roots, r)
		}
	}
	cfg.Roots = roots
	if p.opts.Frontend == "react" {
		cfg.TestEnvironment = "jsdom"
		p.deps.Add(project.Dev, "babel-jest")
	}
	p.add(&generator.WriteJSONOp{Path: "jest.config.json", Value: cfg})

	p.script("test", "jest", "run the test suite")
	p.deps.Add(project.Dev, "jest")
}

// finish documents the scripts in the README and records the stack.
func (p *plan) finish() {
	if len(p.scripts) > 0 {
		var b strings.Builder
		b.WriteString("\n## Custom scripts\n\n")
		for _, s := range dedupeScripts(p.scripts) {
			fmt.Fprintf(&b, "- `%s %s`: %s\n", p.data.Run, s.Name, s.Help)
		}
		p.add(&generator.AppendOp{Path: "README.md", Content: b.String()})
	}

	rec := &project.Record{Project: p.opts.Stack(), PackageManager: p.pm}
	content, err := rec.Marshal()
	if err != nil && p.err == nil {
		p.err = err
	}
	p.file(project.RecordFile, content)
}

// dedupeScripts keeps the last definition of each script, in the order
// names first appeared, matching what package.json ends up with.
func dedupeScripts(scripts []Script) []Script {
	index := map[string]int{}
	var out []Script
	for _, s := range scripts {
		if i, ok := index[s.Name]; ok {
			out[i] = s
			continue
		}
		index[s.Name] = len(out)
		out = append(out, s)
	}
	return out
}
