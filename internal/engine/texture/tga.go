package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

// TGA image types.
const (
	TGATypeUncompressed = 2  // true-color
	TGATypeRLE          = 10 // run-length encoded true-color
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("tga: data truncated")

func init() {
	// No color map, true-color image type at byte 2.
	image.RegisterFormat("tga", "?\x00\x02", DecodeTGA, decodeTGAConfig)
	image.RegisterFormat("tga", "?\x00\x0a", DecodeTGA, decodeTGAConfig)
}

type tgaHeader struct {
	idLength    int
	imageType   byte
	width       int
	height      int
	bpp         int
	topToBottom bool
}

func readTGAHeader(data []byte) (tgaHeader, error) {
	if len(data) < tgaHeaderSize {
		return tgaHeader{}, errTGATruncated
	}
	h := tgaHeader{
		idLength:    int(data[0]),
		imageType:   data[2],
		width:       int(data[12]) | int(data[13])<<8,
		height:      int(data[14]) | int(data[15])<<8,
		bpp:         int(data[16]),
		topToBottom: data[17]&0x20 != 0,
	}
	if data[1] != 0 {
		return h, errors.New("tga: color-mapped images not supported")
	}
	if h.imageType != TGATypeUncompressed && h.imageType != TGATypeRLE {
		return h, fmt.Errorf("tga: unsupported image type %d", h.imageType)
	}
	if h.bpp != 24 && h.bpp != 32 {
		return h, fmt.Errorf("tga: unsupported bit depth %d", h.bpp)
	}
	return h, nil
}

func decodeTGAConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, tgaHeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return image.Config{}, err
	}
	h, err := readTGAHeader(buf)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.RGBAModel, Width: h.width, Height: h.height}, nil
}

// DecodeTGA decodes an uncompressed or RLE true-color TGA image.
func DecodeTGA(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	h, err := readTGAHeader(data)
	if err != nil {
		return nil, err
	}

	offset := tgaHeaderSize + h.idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}
	px := &tgaPixels{
		img:    image.NewRGBA(image.Rect(0, 0, h.width, h.height)),
		data:   data[offset:],
		bytes:  h.bpp / 8,
		header: h,
	}

	if h.imageType == TGATypeUncompressed {
		err = px.decodeRaw()
	} else {
		err = px.decodeRLE()
	}
	if err != nil {
		return nil, err
	}
	return px.img, nil
}

type tgaPixels struct {
	img    *image.RGBA
	data   []byte
	pos    int
	bytes  int
	header tgaHeader
}

// next reads one BGR(A) pixel.
func (p *tgaPixels) next() (color.RGBA, bool) {
	if p.pos+p.bytes > len(p.data) {
		return color.RGBA{}, false
	}
	d := p.data[p.pos:]
	c := color.RGBA{R: d[2], G: d[1], B: d[0], A: 255}
	if p.bytes == 4 {
		c.A = d[3]
	}
	p.pos += p.bytes
	return c, true
}

// set stores pixel i of the file order, flipping bottom-up images.
func (p *tgaPixels) set(i int, c color.RGBA) {
	w, h := p.header.width, p.header.height
	x, y := i%w, i/w
	if !p.header.topToBottom {
		y = h - 1 - y
	}
	p.img.SetRGBA(x, y, c)
}

func (p *tgaPixels) decodeRaw() error {
	n := p.header.width * p.header.height
	for i := 0; i < n; i++ {
		c, ok := p.next()
		if !ok {
			return errTGATruncated
		}
		p.set(i, c)
	}
	return nil
}

func (p *tgaPixels) decodeRLE() error {
	n := p.header.width * p.header.height
	for i := 0; i < n; {
		if p.pos >= len(p.data) {
			return errTGATruncated
		}
		packet := p.data[p.pos]
		p.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, ok := p.next()
			if !ok {
				return errTGATruncated
			}
			for j := 0; j < count && i < n; j++ {
				p.set(i, c)
				i++
			}
			continue
		}
		for j := 0; j < count && i < n; j++ {
			c, ok := p.next()
			if !ok {
				return errTGATruncated
			}
			p.set(i, c)
			i++
		}
	}
	return nil
}
