// Command zofweb serves a web form for the root-finding library: pick a
// method, type an expression and its starting data, and get the
// per-iteration trace and final estimate back on the same page. Bad input
// re-renders the form with the error message; it never takes the server
// down.
package main

import (
	"embed"
	"flag"
	"fmt"
	"html/template"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/meenmo/zof/solve"
)

//go:embed index.html
var content embed.FS

var page = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"display": displayFloat,
}).ParseFS(content, "index.html"))

type methodOption struct {
	ID   string
	Name string
}

type pageData struct {
	Methods []methodOption
	Form    map[string]string
	Report  *solve.Report
	Error   string
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/", handleIndex)
	mux.HandleFunc("/solve", handleSolve)

	log.Printf("zofweb listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	render(w, pageData{Methods: methodOptions(), Form: map[string]string{}})
}

func handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := map[string]string{}
	for _, k := range []string{"method", "expression", "param1", "param2", "tol", "max_iter", "delta", "df", "g"} {
		form[k] = strings.TrimSpace(r.PostFormValue(k))
	}

	data := pageData{Methods: methodOptions(), Form: form}
	req, err := buildRequest(form)
	if err != nil {
		data.Error = err.Error()
		render(w, data)
		return
	}

	report, err := solve.Run(req)
	if err != nil {
		data.Error = err.Error()
		render(w, data)
		return
	}
	data.Report = report
	render(w, data)
}

// buildRequest turns raw form fields into a solve.Request. Only the
// parameter fields the chosen method uses are read, so stale values left
// in hidden fields cannot break a one-parameter method.
func buildRequest(form map[string]string) (solve.Request, error) {
	req := solve.Request{
		Method:        form["method"],
		Expression:    form["expression"],
		Derivative:    form["df"],
		FixedPointMap: form["g"],
	}

	nParams := solve.ParamCount(form["method"])
	if nParams == 0 {
		nParams = 1 // unknown method: let solve.Run report it
	}
	for i := 1; i <= nParams; i++ {
		field := fmt.Sprintf("param%d", i)
		v, err := parseFloatField(form[field], field)
		if err != nil {
			return solve.Request{}, err
		}
		req.Params = append(req.Params, v)
	}

	var err error
	if req.Tolerance, err = parseOptionalFloat(form["tol"], "tolerance"); err != nil {
		return solve.Request{}, err
	}
	if req.Delta, err = parseOptionalFloat(form["delta"], "delta"); err != nil {
		return solve.Request{}, err
	}
	if form["max_iter"] != "" {
		n, err := strconv.Atoi(form["max_iter"])
		if err != nil {
			return solve.Request{}, fmt.Errorf("max iterations: %q is not an integer", form["max_iter"])
		}
		req.MaxIter = n
	}
	return req, nil
}

func parseFloatField(s, name string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	return v, nil
}

func parseOptionalFloat(s, name string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	return v, nil
}

func methodOptions() []methodOption {
	ids := solve.Methods()
	opts := make([]methodOption, 0, len(ids))
	for _, id := range ids {
		opts = append(opts, methodOption{ID: id, Name: solve.MethodName(id)})
	}
	return opts
}

func render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, data); err != nil {
		log.Printf("render: %v", err)
	}
}

// displayFloat rounds for display so trace tables stay readable without
// hiding convergence behaviour.
func displayFloat(v float64) string {
	return strconv.FormatFloat(roundTo(v, 12), 'g', -1, 64)
}

// roundTo rounds a float to the specified decimal places.
func roundTo(val float64, decimals uint32) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
