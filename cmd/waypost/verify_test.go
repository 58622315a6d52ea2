package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"purlhub/waypost/pkg/purl/verify"
)

func TestRunVerifyRequiresServer(t *testing.T) {
	verifyFlags.server = ""
	verifyFlags.file = "testdata/obi.yml"
	verifyFlags.dir = ""
	verifyFlags.format = "text"
	verifyFlags.timeout = verify.DefaultTimeout

	err := runVerify(nil, []string{})
	if err == nil {
		t.Error("runVerify() without --server should return error")
	}
}

func TestRunVerifyRequiresFileOrDir(t *testing.T) {
	verifyFlags.server = "http://localhost:1"
	verifyFlags.file = ""
	verifyFlags.dir = ""
	verifyFlags.format = "text"
	verifyFlags.timeout = verify.DefaultTimeout

	err := runVerify(nil, []string{})
	if err == nil {
		t.Error("runVerify() without --file or --dir should return error")
	}
}

func TestRunVerifyHealthyServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/obo/obi/consortium/" {
			w.Header().Set("Location", "http://obi-ontology.org/page/Consortium")
			w.WriteHeader(http.StatusMovedPermanently)
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	verifyFlags.server = server.URL
	verifyFlags.file = "testdata/obi.yml"
	verifyFlags.dir = ""
	verifyFlags.format = "text"
	verifyFlags.timeout = verify.DefaultTimeout

	err := runVerify(nil, []string{})
	if err != nil {
		t.Errorf("runVerify() against matching server returned error: %v", err)
	}
}

func TestRunVerifyDetectsDrift(t *testing.T) {
	// Server answers with the wrong status and target
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "http://example.org/moved")
		w.WriteHeader(http.StatusFound)
	}))
	defer server.Close()

	verifyFlags.server = server.URL
	verifyFlags.file = "testdata/obi.yml"
	verifyFlags.dir = ""
	verifyFlags.format = "json"
	verifyFlags.timeout = verify.DefaultTimeout

	err := runVerify(nil, []string{})
	if err == nil {
		t.Error("runVerify() must exit non-zero when redirects drift")
	}
}
