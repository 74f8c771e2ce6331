package counter_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cloudfoundry/database-backup-and-archive/counter"
	"github.com/cloudfoundry/database-backup-and-archive/counter/fakes"
)

//go:generate counterfeiter -o fakes/fake_writer.go io.Writer

var _ = Describe("CountWriter", func() {
	It("returns the amount written", func() {
		writer := bytes.NewBuffer([]byte(""))
		writerCounter := counter.NewCountWriter(writer)

		n, err := writerCounter.Write([]byte("four"))
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(4))
		Expect(writerCounter.Count()).To(Equal(int64(4)))

		_, err = writerCounter.Write([]byte("four"))
		Expect(err).NotTo(HaveOccurred())
		Expect(writerCounter.Count()).To(Equal(int64(8)))
		Expect(writer.String()).To(Equal("fourfour"))
	})

	When("the write fails part way", func() {
		It("returns the error and counts what was written", func() {
			backingWriter := new(fakes.FakeWriter)
			backingWriter.WriteReturns(2, errors.New("disk full"))
			writerCounter := counter.NewCountWriter(backingWriter)

			n, err := writerCounter.Write([]byte("four"))
			Expect(err).To(MatchError("disk full"))
			Expect(n).To(Equal(2))
			Expect(writerCounter.Count()).To(Equal(int64(2)))
		})
	})
})
