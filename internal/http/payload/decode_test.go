package payload_test

import (
	"errors"
	"feedback/internal/http/payload"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	var (
		dv   payload.DecodeValidator
		req  *http.Request
		form payload.FeedbackForm
		err  error
	)

	newRequest := func(values url.Values) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/feedback/1/update", strings.NewReader(values.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return r
	}

	BeforeEach(func() {
		form = payload.FeedbackForm{}
	})

	JustBeforeEach(func() {
		err = dv.DecodeAndValidateForm(req, &form)
	})

	When("the form is valid", func() {
		BeforeEach(func() {
			req = newRequest(url.Values{"title": {"Great"}, "content": {"Loved it"}})
		})

		It("should bind the values", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(form.Title).To(Equal("Great"))
			Expect(form.Content).To(Equal("Loved it"))
		})
	})

	When("the form is invalid", func() {
		BeforeEach(func() {
			req = newRequest(url.Values{"title": {"Great"}})
		})

		It("should still bind what was submitted", func() {
			Expect(form.Title).To(Equal("Great"))
		})

		It("should expose field errors", func() {
			Expect(err).To(HaveOccurred())
			Expect(payload.FieldErrors(err)).To(Equal(map[string]string{
				"content": "feedback cannot be blank",
			}))
		})
	})

	When("the query string carries values", func() {
		BeforeEach(func() {
			req = newRequest(url.Values{})
			req.URL.RawQuery = "title=Sneaky&content=Sneaky"
		})

		It("should only read the body", func() {
			Expect(err).To(HaveOccurred())
			Expect(form.Title).To(BeEmpty())
		})
	})
})

var _ = Describe("FieldErrors", func() {
	It("should return nil for non-validation errors", func() {
		Expect(payload.FieldErrors(errors.New("boom"))).To(BeNil())
		Expect(payload.FieldErrors(nil)).To(BeNil())
	})
})
