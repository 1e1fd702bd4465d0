/*
Package server offers the conversion functions of package bijoy over HTTP.

Endpoints

	POST /to-unicode        {"text": "..."}  →  {"converted": "..."}   Bijoy → Unicode
	POST /to-ansi           {"text": "..."}  →  {"converted": "..."}   Unicode → Bijoy
	POST /to-unicode-mixed  {"text": "..."}  →  {"converted": "..."}   mixed → Unicode
	GET  /api/convert?text=…&type=u2b|b2u    →  plain text
	GET  /api/detect?text=…                  →  {"unicode": true|false}
	GET  /metrics                            →  Prometheus metrics

POST endpoints answer a missing or empty text with status 400 and
{"error": "Text is required"}. /api/convert is meant for spreadsheet web
service calls and answers an empty text with an empty body. All responses
allow cross-origin requests and are gzip-compressed if the client accepts it.
*/
package server

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/npillmayer/bijoy"
	"github.com/npillmayer/bijoy/internal/tracing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return tracing.Tracer()
}

// DefaultPort is the port the server listens on if neither an address nor
// the PORT environment variable is given.
const DefaultPort = 3000

// maxBodySize limits request bodies.
const maxBodySize = 4 << 20

// HTTPError is an error with an HTTP status. Its message is sent to the
// client as {"error": message}.
type HTTPError struct {
	Code int
	Msg  string
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("%d %s", e.Code, e.Msg)
}

// MethodNotAllowedError is returned for requests with a method the
// endpoint does not serve.
type MethodNotAllowedError struct {
	Method string
	Allow  []string
}

func (e MethodNotAllowedError) Error() string {
	return fmt.Sprintf("method %s not allowed", e.Method)
}

var errTextRequired = HTTPError{Code: http.StatusBadRequest, Msg: "Text is required"}

// response is what an endpoint produces: a body and its content type.
type response struct {
	contentType string
	body        []byte
}

type endpoint func(s *Server, req *http.Request) (*response, error)

type route struct {
	pattern string
	methods []string
	fn      endpoint
}

var routes = []route{
	{"/to-unicode", []string{"POST"}, (*Server).toUnicode},
	{"/to-ansi", []string{"POST"}, (*Server).toBijoy},
	{"/to-unicode-mixed", []string{"POST"}, (*Server).toUnicodeMixed},
	{"/api/convert", []string{"GET"}, (*Server).convert},
	{"/api/detect", []string{"GET"}, (*Server).detect},
}

// Server is an HTTP front end for a converter.
type Server struct {
	conv        *bijoy.Converter
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	requests    *prometheus.CounterVec
	handler     http.Handler
}

// New creates a server for a converter. If conv is nil, the default
// converter of package bijoy is used.
func New(conv *bijoy.Converter) *Server {
	if conv == nil {
		conv = bijoy.Default()
	}
	s := &Server{
		conv:     conv,
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bijoy",
			Name:      "conversions_total",
			Help:      "Number of texts converted, by direction.",
		}, []string{"direction"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bijoy",
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests, by endpoint and status code.",
		}, []string{"endpoint", "code"}),
	}
	s.registry.MustRegister(s.conversions, s.requests)
	s.handler = s.buildHandler()
	return s
}

// Handler returns the HTTP handler serving all endpoints.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) buildHandler() http.Handler {
	mux := http.NewServeMux()
	gzipWrapper, _ := gziphandler.GzipHandlerWithOpts(gziphandler.MinSize(0))
	for _, r := range routes {
		mux.Handle(r.pattern, gzipWrapper(s.wrap(r)))
	}
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

// wrap turns an endpoint into a handler, adding CORS headers, method checks,
// error responses and request metrics.
func (s *Server) wrap(r route) http.HandlerFunc {
	return func(resp http.ResponseWriter, req *http.Request) {
		start := time.Now()
		code := http.StatusOK
		defer func() {
			s.requests.WithLabelValues(r.pattern, strconv.Itoa(code)).Inc()
			tracer().Debugf("http: request %s %s → %d (%v) from=%s",
				req.Method, req.URL.Path, code, time.Since(start), req.RemoteAddr)
		}()
		setCORSHeaders(resp)
		if req.Method == "OPTIONS" {
			allow := strings.Join(append([]string{"OPTIONS"}, r.methods...), ",")
			resp.Header().Set("Access-Control-Allow-Methods", allow)
			if h := req.Header.Get("Access-Control-Request-Headers"); h != "" {
				resp.Header().Set("Access-Control-Allow-Headers", h)
			}
			code = http.StatusNoContent
			resp.WriteHeader(code)
			return
		}
		var res *response
		var err error
		if !methodAllowed(req.Method, r.methods) {
			err = MethodNotAllowedError{req.Method, append([]string{"OPTIONS"}, r.methods...)}
		} else {
			res, err = r.fn(s, req)
		}
		if err != nil {
			code = s.handleErr(resp, req, err)
			return
		}
		resp.Header().Set("Content-Type", res.contentType)
		resp.Write(res.body)
	}
}

func (s *Server) handleErr(resp http.ResponseWriter, req *http.Request, err error) int {
	code := http.StatusInternalServerError
	msg := err.Error()
	switch e := err.(type) {
	case HTTPError:
		code, msg = e.Code, e.Msg
	case MethodNotAllowedError:
		resp.Header().Set("Allow", strings.Join(e.Allow, ","))
		code = http.StatusMethodNotAllowed
	}
	if code >= http.StatusInternalServerError {
		tracer().Errorf("http: request %s %s, error: %v", req.Method, req.URL.Path, err)
	} else {
		tracer().Infof("http: request %s %s, error: %v", req.Method, req.URL.Path, err)
	}
	body, _ := sjson.SetBytes([]byte(`{}`), "error", msg)
	resp.Header().Set("Content-Type", "application/json")
	resp.WriteHeader(code)
	resp.Write(body)
	return code
}

func setCORSHeaders(resp http.ResponseWriter) {
	resp.Header().Set("Access-Control-Allow-Origin", "*")
}

func methodAllowed(method string, methods []string) bool {
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}

// --- Endpoints -------------------------------------------------------------

func (s *Server) toUnicode(req *http.Request) (*response, error) {
	return s.convertJSON(req, "b2u", s.conv.ToUnicode)
}

func (s *Server) toBijoy(req *http.Request) (*response, error) {
	return s.convertJSON(req, "u2b", s.conv.ToBijoy)
}

func (s *Server) toUnicodeMixed(req *http.Request) (*response, error) {
	return s.convertJSON(req, "mixed", s.conv.ConvertMixed)
}

// convertJSON reads {"text": …} from the request body and answers with
// {"converted": …}.
func (s *Server) convertJSON(req *http.Request, direction string, convert func(string) string) (*response, error) {
	text, err := textFromBody(req)
	if err != nil {
		return nil, err
	}
	s.conversions.WithLabelValues(direction).Inc()
	body, err := sjson.SetBytes([]byte(`{}`), "converted", convert(text))
	if err != nil {
		return nil, err
	}
	return &response{contentType: "application/json", body: body}, nil
}

func textFromBody(req *http.Request) (string, error) {
	if req.Body == nil {
		return "", errTextRequired
	}
	body, err := ioutil.ReadAll(io.LimitReader(req.Body, maxBodySize))
	if err != nil {
		return "", HTTPError{Code: http.StatusBadRequest, Msg: "Cannot read request body"}
	}
	if len(body) == 0 {
		return "", errTextRequired
	}
	if !gjson.ValidBytes(body) {
		return "", HTTPError{Code: http.StatusBadRequest, Msg: "Request body is not valid JSON"}
	}
	text := gjson.GetBytes(body, "text")
	if text.Type != gjson.String || text.String() == "" {
		return "", errTextRequired
	}
	return text.String(), nil
}

// convert serves spreadsheet web service calls: the text is taken from the
// query and the result is returned as plain text.
func (s *Server) convert(req *http.Request) (*response, error) {
	query := req.URL.Query()
	text := query.Get("text")
	res := &response{contentType: "text/plain; charset=utf-8"}
	if text == "" {
		return res, nil
	}
	if query.Get("type") == "u2b" {
		s.conversions.WithLabelValues("u2b").Inc()
		res.body = []byte(s.conv.ToBijoy(text))
	} else {
		s.conversions.WithLabelValues("b2u").Inc()
		res.body = []byte(s.conv.ToUnicode(text))
	}
	return res, nil
}

func (s *Server) detect(req *http.Request) (*response, error) {
	body, err := sjson.SetBytes([]byte(`{}`), "unicode", bijoy.IsUnicode(req.URL.Query().Get("text")))
	if err != nil {
		return nil, err
	}
	return &response{contentType: "application/json", body: body}, nil
}

// --- Serving ---------------------------------------------------------------

// ListenAndServe serves HTTP on addr until ctx is cancelled. On cancellation
// the server is shut down gracefully, waiting at most 5 seconds for active
// requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.handler}
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			tracer().Errorf("http: shutdown: %v", err)
		}
	}()
	tracer().Infof("http: server listening on %s", addr)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		<-done
		return nil
	}
	return err
}

// Addr returns the listen address for a port given as a string, which may
// be empty. An empty port selects DefaultPort.
func Addr(port string) string {
	if port == "" {
		return fmt.Sprintf(":%d", DefaultPort)
	}
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
