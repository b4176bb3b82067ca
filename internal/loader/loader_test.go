package loader_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/magtools/magplot/internal/field"
	"github.com/magtools/magplot/internal/loader"
)

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	Context("with a .csv file", func() {
		It("splits rows into aligned position and magnetization arrays", func() {
			path := write("sites.csv", "0,1,2,3,4,5\n6,7,8,9,10,11\n")

			f, err := loader.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Sites()).To(Equal(2))
			Expect(f.Pos[0]).To(Equal(field.Vec3{0, 1, 2}))
			Expect(f.Mag[0]).To(Equal(field.Vec3{3, 4, 5}))
			Expect(f.Pos[1]).To(Equal(field.Vec3{6, 7, 8}))
			Expect(f.Mag[1]).To(Equal(field.Vec3{9, 10, 11}))
		})

		It("rejects tables without exactly 6 columns", func() {
			path := write("narrow.csv", "0,1,2,3,4\n")

			_, err := loader.Load(path)
			Expect(err).To(MatchError(loader.ErrMalformedData))
		})

		It("skips the first row when the header flag is set", func() {
			path := write("head.csv", "Rx,Ry,Rz,Mx,My,Mz\n1,2,3,4,5,6\n")

			f, err := loader.LoadCSV(path, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Sites()).To(Equal(1))
			Expect(f.Pos[0]).To(Equal(field.Vec3{1, 2, 3}))
		})

		It("is idempotent across repeated loads", func() {
			path := write("twice.csv", "0,0,0,1,0,0\n1,0,0,0,1,0\n")

			first, err := loader.Load(path)
			Expect(err).NotTo(HaveOccurred())
			second, err := loader.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Pos).To(Equal(first.Pos))
			Expect(second.Mag).To(Equal(first.Mag))
		})
	})

	Context("with a recognized but unsupported extension", func() {
		It("fails naming the file", func() {
			path := write("data.xyz", "0,1,2,3,4,5\n")

			_, err := loader.Load(path)
			Expect(err).To(MatchError(loader.ErrInvalidExtension))
			Expect(err.Error()).To(ContainSubstring("data.xyz"))
		})
	})

	Context("with an extension-less OOMMF export", func() {
		It("parses whitespace-separated columns", func() {
			path := write("data", "0 1 2  3 4 5\n6\t7 8 9 10 11\n")

			f, err := loader.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Sites()).To(Equal(2))
			Expect(f.Mag[1]).To(Equal(field.Vec3{9, 10, 11}))
		})

		It("skips blank lines", func() {
			path := write("data", "0 1 2 3 4 5\n\n\n6 7 8 9 10 11\n")

			f, err := loader.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Sites()).To(Equal(2))
		})

		It("rejects rows with the wrong column count", func() {
			path := write("data", "0 1 2 3 4 5\n0 1 2 3 4 5 6\n")

			_, err := loader.Load(path)
			Expect(err).To(MatchError(loader.ErrMalformedData))
		})
	})

	Context("with a missing file", func() {
		It("surfaces the underlying I/O error", func() {
			_, err := loader.Load(filepath.Join(dir, "absent"))
			Expect(err).To(MatchError(os.ErrNotExist))
		})
	})

	Describe("the extension heuristic", func() {
		// Only the trailing 5 characters are inspected, so a dot
		// earlier in the name does not make an extension.
		It("treats a dot outside the tail as no extension", func() {
			path := write("run.01-final", "0 1 2 3 4 5\n")

			f, err := loader.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Sites()).To(Equal(1))
		})
	})
})
