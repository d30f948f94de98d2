package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	papertrail "github.com/Tolverne/papertrail2"
	"github.com/Tolverne/papertrail2/pkg/api"
	"github.com/Tolverne/papertrail2/pkg/auth"
	"github.com/Tolverne/papertrail2/pkg/store"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

type settings struct {
	base    string
	root    string
	dataDir string
}

func main() {
	app := kingpin.New("papertrail", "LaTeX quiz viewer and answer sheet tool")
	app.HelpFlag.Short('h')

	var (
		verbose = app.Flag("verbose", "Enable verbose output").Short('v').Bool()
		base    = app.Flag("api", "Contents API base URL").Default(api.DefaultBaseURL).String()
		root    = app.Flag("root", "Repository directory to browse").Default("latex-files").String()
		dataDir = app.Flag("data", "Local data directory").Default("./data").String()
	)

	login := app.Command("login", "Log in and select the local answer store")
	var (
		email    = login.Arg("email", "Email address").Required().String()
		password = login.Arg("password", "Password").Required().String()
	)

	app.Command("logout", "Log out and forget the stored session")

	ls := app.Command("ls", "List quiz files").Default()
	var (
		format  = ls.Flag("format", "Output format").Short('f').Default("tree").String()
		matchLs = ls.Arg("match", "Name must match this").String()
	)

	get := app.Command("get", "Download and outline one or more quiz files")
	matchGet := get.Arg("match", "Name must match this").Required().String()

	pdf := app.Command("pdf", "Render quiz files with your answers to PDF")
	var (
		matchPdf = pdf.Arg("match", "Name must match this").Required().String()
		outDir   = pdf.Flag("output", "Output directory").Short('o').Default(".").String()
		validate = pdf.Flag("validate", "Validate the generated PDF files").Bool()
	)

	export := app.Command("export", "Export your answers as a JSON bundle")
	exportOut := export.Flag("output", "Output file, '-' for stdout").Short('o').Default("-").String()

	importC := app.Command("import", "Import answers from a JSON bundle")
	importFile := importC.Arg("file", "Bundle file to import").Required().String()

	app.Command("clear", "Delete all locally stored answers")

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		papertrail.SetLogLevel("debug")
	} else {
		papertrail.SetLogLevel("warning")
	}

	s := settings{
		base:    *base,
		root:    *root,
		dataDir: *dataDir,
	}

	var err error
	switch command {
	case "login":
		err = doLogin(s, *email, *password)
	case "logout":
		err = doLogout(s)
	case "ls":
		err = doLs(s, *format, *matchLs)
	case "get":
		err = doGet(s, *matchGet)
	case "pdf":
		err = doPdf(s, *matchPdf, *outDir, *validate)
	case "export":
		err = doExport(s, *exportOut)
	case "import":
		err = doImport(s, *importFile)
	case "clear":
		err = doClear(s)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func doLogin(s settings, email, password string) error {
	session := auth.NewSession(s.dataDir)
	user, err := session.Login(email, password)
	if err != nil {
		return err
	}

	fmt.Printf("%v logged in as %q.\n", checkmark, user.DisplayName)
	return nil
}

func doLogout(s settings) error {
	session := auth.NewSession(s.dataDir)
	if _, ok := session.Current(); !ok {
		fmt.Println("Not logged in.")
		return nil
	}

	session.Logout()
	fmt.Printf("%v logged out.\n", checkmark)
	return nil
}

func doClear(s settings) error {
	st, user, err := setupStore(s)
	if err != nil {
		return err
	}

	n := st.Count()
	st.Clear()
	fmt.Printf("%v deleted %d answers for %q.\n", checkmark, n, user.DisplayName)
	return nil
}

// common ---------------------------------------------------------------------

func setupRepo(s settings) *api.Repository {
	client := api.NewClient(s.base)
	return api.NewRepository(client, s.root, s.dataDir)
}

func setupStore(s settings) (*store.Store, *auth.User, error) {
	session := auth.NewSession(s.dataDir)
	user, ok := session.Current()
	if !ok {
		return nil, nil, fmt.Errorf("not logged in, use 'papertrail login' first")
	}

	return store.New(s.dataDir, user.ID), user, nil
}
