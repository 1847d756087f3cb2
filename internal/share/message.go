// Package share builds outbound share payloads for the supported
// social channels. Hand-off is fire-and-forget: the service only
// constructs the payload, delivery happens outside and reports nothing
// back.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"storefront-service/internal/model"
)

// Supported share channels
const (
	ChannelWhatsApp  = "whatsapp"
	ChannelFacebook  = "facebook"
	ChannelInstagram = "instagram"
	ChannelTikTok    = "tiktok"
)

// Payload is a ready-to-hand-off share message. URL is empty for
// clipboard-style channels where the text itself is the payload.
type Payload struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
	URL     string `json:"url,omitempty"`
}

// ForProduct builds the share payload for a product on the given
// channel. Unknown channels yield an error.
func ForProduct(channel, siteURL string, product *model.Product) (*Payload, error) {
	symbol := model.CurrencySymbol(product.Currency)
	price := fmt.Sprintf("%s%.2f", symbol, product.Price)

	switch channel {
	case ChannelWhatsApp:
		text := fmt.Sprintf("¡Mira este producto en Fashion Room! 👗\n\n%s\n%s\n\nPrecio: %s\n\n¡Hazte con el tuyo ahora!",
			product.Name, product.Description, price)
		return &Payload{
			Channel: channel,
			Text:    text,
			URL:     "https://wa.me/?text=" + url.QueryEscape(text),
		}, nil
	case ChannelFacebook:
		text := fmt.Sprintf("¡Mira este producto en Fashion Room! 👗 %s - %s", product.Name, price)
		return &Payload{
			Channel: channel,
			Text:    text,
			URL: fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s&quote=%s",
				url.QueryEscape(siteURL), url.QueryEscape(text)),
		}, nil
	case ChannelInstagram:
		text := fmt.Sprintf("¡Mira este producto en Fashion Room! 👗 %s %s #FashionRoom #Moda", product.Name, price)
		return &Payload{Channel: channel, Text: text}, nil
	case ChannelTikTok:
		text := fmt.Sprintf("¡Mira este producto! %s %s 👗 #FashionRoom #Moda #Compra", product.Name, price)
		return &Payload{Channel: channel, Text: text}, nil
	}
	return nil, fmt.Errorf("share: unsupported channel %q", channel)
}

// ForPost builds the Facebook share payload attached to a feed post
// share bump.
func ForPost(siteURL string, post *model.FeedPost) *Payload {
	text := fmt.Sprintf("¡Mira esta publicación en Fashion Room! 👗 %s - $%.2f", post.Title, post.Price)
	return &Payload{
		Channel: ChannelFacebook,
		Text:    text,
		URL: fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s&quote=%s",
			url.QueryEscape(siteURL), url.QueryEscape(text)),
	}
}

// CompanyWhatsAppLink builds a direct wa.me contact link for a
// product's seller, or an empty string when no number is on file.
func CompanyWhatsAppLink(product *model.Product) string {
	number := digitsOnly(product.CompanyWhatsApp)
	if number == "" {
		return ""
	}
	text := fmt.Sprintf("Hola, me interesa el producto: %s. Precio: %s %.2f",
		product.Name, product.Currency, product.Price)
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}

// ProductLink builds the public marketplace link for a product
func ProductLink(siteURL string, productID uint) string {
	return fmt.Sprintf("%s?product=%d", strings.TrimRight(siteURL, "/"), productID)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
