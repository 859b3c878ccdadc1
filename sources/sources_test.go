package sources_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalErrs "github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/sources"
)

var _ = Describe("Sources", func() {
	Describe("Parse", func() {
		It("accepts every known source", func() {
			for _, source := range sources.All() {
				parsed, err := sources.Parse(source.String())
				Expect(err).ToNot(HaveOccurred())
				Expect(parsed).To(Equal(source))
			}
		})

		It("accepts dash variants", func() {
			parsed, err := sources.Parse("athena-dash")
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed.IsDash()).To(BeTrue())
			Expect(parsed.Base()).To(Equal(sources.Athena))
		})

		It("returns bad request for unknown sources", func() {
			_, err := sources.Parse("cerner")
			Expect(err).To(MatchError(internalErrs.BadRequest))
		})
	})

	Describe("Dash", func() {
		It("round trips through Base", func() {
			Expect(sources.Elation.Dash().Base()).To(Equal(sources.Elation))
		})

		It("is not a dash source itself", func() {
			Expect(sources.Elation.IsDash()).To(BeFalse())
			Expect(sources.Elation.Dash().IsDash()).To(BeTrue())
		})
	})
})
