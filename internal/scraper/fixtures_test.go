package scraper

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/alvarorichard/mediapoisk/internal/util"
)

const testBase = "http://mediapoisk.test"

const searchPageHTML = `<html><body>
<table class="zebra">
<tr class="navbar"><td colspan="10">Страницы: <b>1</b> <a href="?skip=20">2</a></td></tr>
<tr class="even">
 <td><img src="new.png" title="новинка"/></td>
 <td><span title="05.03.2014 12:30">05.03</span></td>
 <td><a href="/media_show_page.php?section=video&id=101"><span class="title">Начало</span><span class="subtitle">Inception<br/>Origin</span></a></td>
 <td><img alt="HD-rip"/><span title="Видео: (5) HD-рип, Звук: (4) профессиональный перевод">q</span></td>
 <td><img alt="Русский"/><img alt="Английский"/></td>
 <td><a>Боевик</a> <a>Фантастика</a></td>
 <td><a>США</a></td>
 <td>2010</td>
 <td>8.73</td>
 <td>0</td>
</tr>
<tr class="odd">
 <td></td>
 <td><span title="06.03.2014">06.03</span></td>
 <td><a href="/media_show_page.php?section=video&id=broken"><span class="title">Сломано</span></a></td>
 <td><img alt="AVI"/><span title="Видео: (4) DVD-рип, Звук: (5) оригинальная дорожка/полный дубляж">q</span></td>
 <td></td><td></td><td></td>
 <td>1999</td>
 <td>5.0</td>
 <td>5.0</td>
</tr>
<tr class="even">
 <td></td>
 <td><span title="07.03.2014 00:00">07.03</span></td>
 <td><a href="/media_show_page.php?section=video&id=103"><span class="title">Третий</span><span class="subtitle"></span></a></td>
 <td><img alt="VHS"/><span title="Видео: (9) голограмма, Звук: (4) профессиональный перевод">q</span></td>
 <td><img alt="Русский"/></td>
 <td><a>Неведомый</a></td>
 <td><a>Япония</a></td>
 <td>2001</td>
 <td>0.0</td>
 <td>7</td>
</tr>
</table>
</body></html>`

const lastSearchPageHTML = `<html><body>
<table class="zebra">
<tr class="navbar"><td>Страницы: <a href="?skip=0">1</a> <b>2</b></td></tr>
</table>
</body></html>`

const emptySearchPageHTML = `<html><body>
<table class="zebra">
<tr class="navbar"><td>Ничего не найдено</td></tr>
</table>
</body></html>`

const detailsPageHTML = `<html><body><table><tr><td class="contents">
<table class="infobar"><tr>
 <td><span class="title">Начало</span><span class="subtitle">Inception</span></td>
 <td>Боевик, Фантастика<br/>США, Великобритания, 2010</td>
 <td>Пользователи: 8.1<br/>IMDB: 8.8</td>
</tr></table>
<p class="property">Дата премьеры: <span>8 июля 2010</span></p>
<p class="property">Дата российской премьеры: <span>22 июля 2010</span></p>
<p class="property">Студия: <span><a>Warner Bros.</a>, <a>Legendary</a></span></p>
<p class="property">Создатели: <span><a>Кристофер Нолан</a></span></p>
<p class="property">В ролях: <span><a>Леонардо ДиКаприо</a>, <a>Джозеф Гордон-Левитт</a></span></p>
<p class="property">Роли озвучивали: <span><a>Ярослав Толстой</a></span></p>
<p class="property">Серии: <span>1</span></p>
<p class="property">Бюджет: <span>160 млн</span></p>
<div class="media_pic"><a href="http://img.test/poster.jpg"><img/></a></div>
<div style="display:table-cell; padding: 4px">Кобб, талантливый вор.</div>
<div id="imgsContainer"><a href="http://img.test/1.jpg"></a><a href="http://img.test/2.jpg"></a></div>
</td></tr></table></body></html>`

const missingDetailsPageHTML = `<html><body><table><tr><td class="contents">
<p>Запрошенная страница не найдена</p>
</td></tr></table></body></html>`

const multiFolderPageHTML = `<html><body>
<table class="copies"><tr><td>
<table class="copy" id="copy11"><tr>
 <td class="copy_title"><img alt="HD-rip"/><img alt="новое качество"/> Начало (720p)</td>
 <td class="server"><a href="/playlist.php?cid=11">torrent</a></td>
 <td class="br">
  <p>Язык: <img class="flag" alt="Русский"/><img class="flag" alt="Английский"/></p>
  <p>Качество звука: (4) профессиональный перевод</p>
  <p>Качество изображения: (5) HD-рип</p>
  <p>Встроенные субтитры: <img class="flag" alt="Английский"/></p>
  <p>Размер файлов: 1.5 GB</p>
 </td>
</tr></table>
<table class="copy" id="copy12"><tr>
 <td class="copy_title"><img alt="AVI"/> Начало (DVD)</td>
 <td class="server"><a href="/playlist.php?cid=12">torrent</a></td>
 <td class="br">
  <p>Язык: <img class="flag" alt="Клингонский"/></p>
  <p>Качество звука: (2) любительский одноголосый перевод</p>
  <p>Размер файлов: много GB</p>
  <p>Цвет: чёрно-белый</p>
 </td>
</tr></table>
<table class="copy" id="copy13"><tr>
 <td class="copy_title"><img alt="HD-rip 1080"/> Начало (1080p)</td>
 <td class="server"></td>
 <td class="br">
  <p>Размер файлов: 700 MB</p>
  <p>Внешние или отключаемые субтитры: <img class="flag" alt="Русский"/></p>
 </td>
</tr></table>
</td></tr></table>
</body></html>`

const singleFolderPageHTML = `<html><body>
<table class="copies"><tr><td>
<table class="copy" id="copy21"><tr>
 <td class="copy_title"><img alt="HD-rip"/> Сериал</td>
 <td class="server"><a href="/playlist.php?cid=21">torrent</a></td>
 <td class="br"><p>Размер файлов: 2147483648</p></td>
</tr></table>
</td></tr>
<tr class="files"><td><table>
 <tr><th>#</th><th>link</th><th>title</th><th>-</th><th>duration</th><th>format</th><th>resolution</th></tr>
 <tr><td><img alt="новые серии"/></td><td><a href="/playlist.php?cid=21&fid=501">get</a></td><td>Серия 1</td><td></td><td>45:10</td><td>MKV</td><td>1280x720</td></tr>
 <tr><td></td><td>нет ссылки</td><td>Серия 2</td><td></td><td>44:00</td><td>MKV</td><td>1280x720</td></tr>
 <tr><td></td><td><a href="/playlist.php?cid=21&fid=503">get</a></td><td>Серия 3</td><td></td><td>1:02:03</td><td>AVI</td><td>wide</td></tr>
 <tr><td></td><td><a href="/playlist.php?cid=21&fid=504">get</a></td><td>Серия 4</td><td></td><td>a:b</td><td>AVI</td><td></td></tr>
</table></td></tr>
</table>
</body></html>`

func filesPageHTML(folderID int, fileIDs ...int) string {
	rows := ""
	for _, id := range fileIDs {
		rows += fmt.Sprintf(`<tr><td></td><td><a href="/playlist.php?cid=%d&fid=%d">get</a></td><td>file %d</td><td></td><td>90</td><td>MKV</td><td>1920x1080</td></tr>`, folderID, id, id)
	}
	return `<html><body><table><tr class="files"><td><table><tr><th>h</th></tr>` + rows + `</table></td></tr></table></body></html>`
}

// fakeFetcher serves canned pages by URL and counts requests.
// Pages listed in slow block until release is closed.
type fakeFetcher struct {
	mu      sync.Mutex
	pages   map[string]string
	slow    map[string]bool
	release chan struct{}
	calls   map[string]int
	cookies []*http.Cookie
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		pages:   make(map[string]string),
		slow:    make(map[string]bool),
		release: make(chan struct{}),
		calls:   make(map[string]int),
	}
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string, cookies ...*http.Cookie) ([]byte, error) {
	f.mu.Lock()
	f.calls[url]++
	f.cookies = append(f.cookies, cookies...)
	page, ok := f.pages[url]
	slow := f.slow[url]
	f.mu.Unlock()

	if slow {
		select {
		case <-f.release:
		case <-time.After(5 * time.Second):
		}
	}
	if !ok {
		return nil, unreachableError(errors.New("404 Not Found"), "failed to fetch %s", url)
	}
	return []byte(page), nil
}

func (f *fakeFetcher) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeFetcher) count(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

func titleURL(section string, id int) string {
	return fmt.Sprintf("%s/media_show_page.php?section=%s&id=%d", testBase, section, id)
}

func filesURL(section string, id, folderID int) string {
	return fmt.Sprintf("%s&cid=%d", titleURL(section, id), folderID)
}

func newTestScraper(t *testing.T, f Fetcher, timeout time.Duration) *Scraper {
	t.Helper()
	return New(f, Options{
		BaseURL:    testBase,
		MaxWorkers: 4,
		Timeout:    timeout,
		Logger:     util.Discard(),
	})
}

func newTestParser() *pageParser {
	return newPageParser(util.Discard(), testBase)
}
