package site

// layoutTemplate is the document shell shared by every page. Each page
// supplies a "content" template.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  {{with .Site.BaseURL}}<link rel="canonical" href="{{.}}{{$.Path}}">{{end}}
  <link rel="stylesheet" href="/assets/site.css">
</head>
<body data-wasm="{{if .Site.WasmDir}}true{{else}}false{{end}}" data-live-reload="{{.Site.LiveReload}}">
  <header class="site-header">
    <a href="/" class="wordmark" aria-label="{{.Site.SiteName}} home">{{template "logo"}}</a>
    <nav class="site-nav" aria-label="Primary">
      <a href="/work"{{if navActive .Path "/work"}} class="active" aria-current="page"{{end}}>Work</a>
      <a href="/agency"{{if navActive .Path "/agency"}} class="active" aria-current="page"{{end}}>Agency</a>
      <a href="/contact"{{if navActive .Path "/contact"}} class="active" aria-current="page"{{end}}>Contact</a>
    </nav>
    <button type="button" class="navigator" data-widget="rotator" aria-label="Back to top">
      <svg class="navigator-icon" style="{{.Navigator}}" width="28" height="28" viewBox="0 0 28 28" fill="none" stroke="currentColor" stroke-width="1.5" aria-hidden="true">
        <circle cx="14" cy="14" r="12"/><path d="M14 5v18M5 14h18"/><path d="M14 5l-3 4h6z" fill="currentColor"/>
      </svg>
    </button>
  </header>
  <main id="main">{{template "content" .}}</main>
  <footer class="site-footer">
    <div class="footer-about">
      {{if .Layout.LogoURL}}<img class="footer-logo" src="{{.Layout.LogoURL}}" alt="{{.Site.SiteName}}">{{else}}{{template "logo"}}{{end}}
      <p>{{.Layout.AboutText}}</p>
    </div>
    <div class="footer-contact">{{template "copy" copy .Layout.Email}}</div>
    <ul class="footer-social">{{range .Layout.SocialLinks}}
      <li><a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Platform}}</a></li>{{end}}
    </ul>
    <p class="footer-legal">&copy; {{.Year}} {{.Site.SiteName}}</p>
  </footer>
  {{if .Site.WasmDir}}<script src="/assets/wasm_exec.js"></script>{{end}}
  <script src="/assets/site.js" defer></script>
</body>
</html>
{{end}}`

// partialsTemplate holds the fragments the pages share: widgets, cards and
// the case-study content blocks.
const partialsTemplate = `
{{define "logo"}}<svg class="logo" width="132" height="24" viewBox="0 0 132 24" aria-hidden="true"><text x="0" y="19" font-family="inherit" font-size="20" font-weight="700" fill="currentColor">Wayfindr<tspan fill="#ff4d00">.</tspan></text></svg>{{end}}

{{define "reveal"}}<div class="reveal" data-widget="reveal" data-breakpoint="{{.Breakpoint}}">
  <p class="sr-only">{{.Text}}</p>
  {{range .Lines}}<span class="reveal-line" aria-hidden="true"><span class="reveal-fill">{{.}}</span></span>
  {{end}}
</div>{{end}}

{{define "copy"}}<button type="button" class="copy" data-widget="copy" data-text="{{.Text}}" data-idle="{{.Idle}}" data-hint="{{.Hint}}" data-copied="{{.Copied}}" data-pointer-ms="{{.PointerMS}}" data-touch-ms="{{.TouchMS}}" data-fade-ms="{{.FadeMS}}">
  <span class="copy-text">{{.Idle}}</span>
  <span class="copy-bubble" role="status" aria-live="polite">{{.Hint}}</span>
</button>{{end}}

{{define "project-card"}}<a class="project-card" href="/work/{{.Slug}}">
  <figure class="project-thumb">{{if .Thumbnail}}<img src="{{.Thumbnail}}" alt="{{.Title}}" loading="lazy">{{end}}</figure>
  <h3>{{.Title}}</h3>
  <p class="meta">{{.Client}} &middot; {{.Year}}</p>
  {{with .Services}}<p class="tags">{{join . ", "}}</p>{{end}}
</a>{{end}}

{{define "brand"}}<span class="brand">{{if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.Name}}">{{else}}{{.Name}}{{end}}</span>{{end}}

{{define "figure"}}<figure{{if eq .Size "large"}} class="span-2"{{end}}><img src="{{.URL}}" alt="{{.Caption}}" loading="lazy">{{with .Caption}}<figcaption>{{.}}</figcaption>{{end}}</figure>{{end}}

{{define "illustration"}}<svg class="illustration illustration-{{.}}" width="320" height="320" viewBox="0 0 320 320" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true">
  {{if eq . "strategy"}}<circle cx="160" cy="160" r="120"/><circle cx="160" cy="160" r="72"/><circle cx="160" cy="160" r="24" fill="currentColor"/><path d="M160 20v60M160 240v60M20 160h60M240 160h60"/>
  {{else if eq . "identity"}}<rect x="60" y="60" width="200" height="200" rx="100"/><rect x="110" y="110" width="100" height="100"/><path d="M60 260L260 60"/>
  {{else if eq . "story"}}<path d="M40 80h240M40 140h180M40 200h220M40 260h120"/><circle cx="260" cy="250" r="30"/>
  {{else if eq . "digital"}}<rect x="40" y="60" width="240" height="160" rx="8"/><path d="M120 260h80M160 220v40"/><path d="M90 110l40 30-40 30M150 170h70"/>
  {{else}}<path d="M40 280L160 40l120 240z"/><circle cx="160" cy="190" r="40"/>
  {{end}}
</svg>{{end}}

{{define "block"}}{{if .Known}}<section class="block block-{{.Type}}">
  {{if eq .Type "fullWidthImage"}}
  <figure class="full-bleed"><img src="{{.URL}}" alt="{{.AltText}}" loading="lazy">{{with .Caption}}<figcaption>{{.}}</figcaption>{{end}}</figure>
  {{else if eq .Type "dualGrid"}}
  <div class="grid grid-2">{{range .Images}}{{template "figure" .}}{{end}}</div>
  {{else if eq .Type "tripleGrid"}}
  <div class="grid grid-3">{{range .Images}}{{template "figure" .}}{{end}}</div>
  {{else if eq .Type "gallery"}}
  <div class="gallery cols-{{.GalleryColumns}}">{{range .Images}}{{template "figure" .}}{{end}}</div>
  {{else if eq .Type "richText"}}
  {{with .Heading}}<h2>{{.}}</h2>{{end}}
  <div class="prose">{{markdown .Text}}</div>
  {{else if eq .Type "statBlock"}}
  <div class="stat"><span class="stat-number">{{.Number}}</span><span class="stat-label">{{.Label}}</span></div>
  {{else if eq .Type "video"}}
  {{if .IsFileVideo}}<video class="video" src="{{.VideoFileURL}}"{{with .PosterURL}} poster="{{.}}"{{end}}{{if .Autoplay}} autoplay muted playsinline{{end}}{{if .Loop}} loop{{end}} controls></video>
  {{else}}{{with .EmbedURL}}<div class="embed"><iframe src="{{.}}" title="Video" allow="autoplay; fullscreen; picture-in-picture" allowfullscreen loading="lazy"></iframe></div>{{end}}{{end}}
  {{else if eq .Type "quote"}}
  <blockquote class="pull-quote"><p>{{.Quote}}</p>{{with .Author}}<cite>{{.}}{{with $.Role}}, {{.}}{{end}}</cite>{{end}}</blockquote>
  {{else if eq .Type "beforeAfter"}}
  <div class="before-after">
    <figure><img src="{{.BeforeImage}}" alt="{{.BeforeCaption}}" loading="lazy"><figcaption>{{.BeforeCaption}}</figcaption></figure>
    <figure><img src="{{.AfterImage}}" alt="{{.AfterCaption}}" loading="lazy"><figcaption>{{.AfterCaption}}</figcaption></figure>
  </div>
  {{else if eq .Type "colorPalette"}}
  <ul class="palette">{{range .Colors}}<li><span class="swatch" style="background-color: {{.Hex}}"></span><span class="swatch-name">{{.Name}}</span><code>{{.Hex}}</code></li>{{end}}</ul>
  {{else if eq .Type "typography"}}
  <div class="fonts">{{range .Fonts}}<div class="font">
    {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}" loading="lazy">{{else}}<p class="font-sample">{{.SampleText}}</p>{{end}}
    <h4>{{.Name}}</h4>{{with .Usage}}<p class="font-usage">{{.}}</p>{{end}}
  </div>{{end}}</div>
  {{else if eq .Type "spacer"}}
  <div class="spacer {{.SpacerClass}}" aria-hidden="true"></div>
  {{end}}
</section>{{end}}{{end}}
`

// pageTemplates maps a page name to its "content" template.
var pageTemplates = map[string]string{
	"home": `{{define "content"}}{{with .Page}}{{$brands := len .Brands}}
<section class="hero">
  <h1 class="hero-title">{{range .HeroLines}}<span class="hero-line">{{.}}</span>{{end}}</h1>
  <div class="scroll-hint" data-widget="scroll-hint" style="opacity: 1" aria-hidden="true">Scroll</div>
</section>
<section class="intro">{{template "reveal" .Intro}}</section>
{{with .Marquee}}<section class="brands" aria-label="Clients">
  <div class="marquee">{{range $i, $b := .}}<span class="marquee-item"{{if ge $i $brands}} aria-hidden="true"{{end}}>{{template "brand" $b}}</span>{{end}}</div>
</section>{{end}}
<section class="work-preview">
  <header class="section-head"><h2>Selected work</h2><a href="/work">All projects</a></header>
  {{with .Lead}}<div class="lead">{{template "project-card" .}}</div>{{end}}
  {{with .Projects}}<div class="grid grid-3">{{range .}}{{template "project-card" .}}{{end}}</div>{{end}}
</section>
{{with .Testimonials}}<section class="testimonials">{{range .}}
  <figure class="testimonial"><blockquote>{{.Quote}}</blockquote><figcaption><strong>{{.Author}}</strong> {{.Role}}, {{.Company}}</figcaption></figure>{{end}}
</section>{{end}}
{{end}}{{end}}`,

	"agency": `{{define "content"}}{{with .Page}}{{$a := .}}
<section class="agency-hero">
  <p class="eyebrow">{{.TopLabel}}</p>
  <h1><span>{{.HeroLine1}}</span> <span>{{.HeroLine2}}</span></h1>
  {{template "reveal" .Description}}
  <p class="agency-bottom">{{.HeroBottomText}}{{with .EstablishedYear}} <span class="established">Est. {{.}}</span>{{end}}</p>
</section>
{{with .Stats}}<section class="stats">{{range .}}<div class="stat"><span class="stat-number">{{.Number}}</span><span class="stat-label">{{.Label}}</span></div>{{end}}</section>{{end}}
<section class="capabilities" data-widget="tracker">
  <h2>{{.CapabilitiesTitle}}</h2>
  <ol>{{range $i, $c := .Capabilities}}
    <li class="capability{{if eq $i 0}} is-active{{end}}" data-index="{{$i}}">
      <a href="{{$c.Href}}"><span class="index">{{printf "%02d" (add $i 1)}}</span><h3>{{$c.Title}}</h3></a>
      <ul>{{range $c.Items}}<li>{{.}}</li>{{end}}</ul>
    </li>{{end}}
  </ol>
</section>
{{with .Services}}<section class="services"><h2>Services</h2>
  <ul>{{range .}}<li><a href="/services/{{.Slug}}">{{.Title}}</a><p>{{.Description}}</p></li>{{end}}</ul>
</section>{{end}}
{{with .PhilosophyQuote}}<blockquote class="philosophy"><p>{{.}}</p><cite>{{$a.PhilosophyAttribution}}</cite></blockquote>{{end}}
{{with .Industries}}<section class="industries">
  <h2>{{or $a.IndustriesTitle "Industries"}}</h2>
  <div class="carousel" data-widget="carousel" data-interval="{{.IntervalMS}}" data-transition="{{.TransitionMS}}" aria-roledescription="carousel">
    <div class="carousel-viewport">
      <div class="carousel-track" style="{{translateX .Offset}}">{{range .Slots}}
        <div class="carousel-slide" data-internal="{{.Internal}}" data-real="{{.Real}}"{{if .Clone}} aria-hidden="true"{{end}}>{{.Label}}</div>{{end}}
      </div>
    </div>
    <button type="button" class="carousel-prev" data-action="prev" aria-label="Previous">&larr;</button>
    <button type="button" class="carousel-next" data-action="next" aria-label="Next">&rarr;</button>
    <div class="carousel-dots">{{range .Dots}}<button type="button" class="carousel-dot{{if .Active}} is-active{{end}}" data-index="{{.Index}}" aria-label="Go to slide {{add .Index 1}}"></button>{{end}}</div>
    <div class="carousel-progress"><span class="carousel-progress-bar"></span></div>
  </div>
</section>{{end}}
{{end}}{{end}}`,

	"work": `{{define "content"}}
<section class="page-head"><h1>Work</h1><p class="lede">Selected projects from the studio.</p></section>
<section class="grid grid-2 work-grid">{{range .Page}}{{template "project-card" .}}{{end}}</section>
{{end}}`,

	"project": `{{define "content"}}{{with .Page}}{{$p := .Project}}
<article class="case-study">
  <header class="case-hero">
    <p class="eyebrow">{{$p.Client}} &middot; {{$p.Year}}</p>
    <h1>{{$p.Title}}</h1>
    {{with $p.Description}}<p class="lede">{{.}}</p>{{end}}
    <dl class="case-meta">
      <div><dt>Client</dt><dd>{{$p.Client}}</dd></div>
      <div><dt>Industry</dt><dd>{{$p.Industry}}</dd></div>
      <div><dt>Services</dt><dd>{{join $p.Services ", "}}</dd></div>
      <div><dt>Year</dt><dd>{{$p.Year}}</dd></div>
    </dl>
    {{if $p.HeroVideoURL}}<video class="case-hero-media" src="{{$p.HeroVideoURL}}"{{with $p.HeroImage}} poster="{{.}}"{{end}} autoplay muted loop playsinline></video>
    {{else if $p.HeroImage}}<img class="case-hero-media" src="{{$p.HeroImage}}" alt="{{$p.Title}}">{{end}}
  </header>
  <section class="case-brief"><h2>The brief</h2>{{template "reveal" .Brief}}</section>
  {{with $p.Solution}}<section class="case-solution"><h2>The solution</h2><div class="prose">{{markdown .}}</div></section>{{end}}
  {{range $p.Content}}{{template "block" .}}{{end}}
  {{with .Results}}<section class="case-results"><h2>Results</h2>{{template "reveal" .}}</section>{{end}}
  {{with $p.ProjectURL}}<p class="case-link"><a href="{{.}}" target="_blank" rel="noopener noreferrer">Visit the live project</a></p>{{end}}
  {{with $p.RelatedProjects}}<section class="related"><h2>Related projects</h2>
    <div class="grid grid-3">{{range .}}<a class="project-card" href="/work/{{.Slug}}">{{if .Thumbnail}}<img src="{{.Thumbnail}}" alt="{{.Title}}" loading="lazy">{{end}}<h3>{{.Title}}</h3></a>{{end}}</div>
  </section>{{end}}
</article>
<a class="next-project" href="/work/{{.Next.Slug}}"><span>Next project</span><strong>{{.Next.Title}}</strong></a>
{{end}}{{end}}`,

	"service": `{{define "content"}}{{with .Page}}{{$s := .Service}}
<article class="service">
  <header class="service-hero">
    <p class="eyebrow">Service</p>
    <h1>{{$s.Title}}</h1>
    <p class="lede">{{$s.Description}}</p>
    {{if .Illustration}}{{template "illustration" .Illustration}}{{else if $s.HeroImage}}<img class="service-image" src="{{$s.HeroImage}}" alt="{{$s.Title}}">{{end}}
  </header>
  {{with $s.SubServices}}<section class="sub-services"><ol>{{range $i, $x := .}}
    <li><span class="index">{{printf "%02d" (add $i 1)}}</span><h3>{{$x.Title}}</h3><p>{{$x.Description}}</p></li>{{end}}
  </ol></section>{{end}}
  {{with .Related}}<section class="related"><h2>Related work</h2>
    <div class="grid grid-2">{{range .}}{{template "project-card" .}}{{end}}</div>
  </section>{{end}}
  <nav class="service-nav" aria-label="Services">
    {{with .Prev}}<a class="prev" href="/services/{{.Slug}}">&larr; {{.Title}}</a>{{end}}
    {{with .Next}}<a class="next" href="/services/{{.Slug}}">{{.Title}} &rarr;</a>{{end}}
  </nav>
</article>
{{end}}{{end}}`,

	"contact": `{{define "content"}}{{with .Page}}{{$info := .Contact.Contact}}
<section class="page-head">
  <h1>Let's talk</h1>
  <p class="availability">{{$info.AvailabilityText}} <strong>{{$info.AvailabilityHighlight}}</strong></p>
</section>
<section class="contact-details">
  <div class="contact-email">{{template "copy" .Email}}</div>
  {{with $info.Address}}<address>{{.}}</address>{{end}}
</section>
{{with .FAQs}}<section class="faq"><h2>Questions</h2>{{range .}}
  <details><summary>{{.Question}}</summary><p>{{.Answer}}</p></details>{{end}}
</section>{{end}}
{{end}}{{end}}`,

	"notfound": `{{define "content"}}
<section class="not-found">
  <p class="eyebrow">404</p>
  <h1>Page not found</h1>
  <p>The page you are looking for has moved or never existed.</p>
  <a class="button" href="/">Back to home</a>
</section>
{{end}}`,
}

// cssContent is the site stylesheet.
const cssContent = `/* ============ Variables ============ */
:root {
  --ink: #111111;
  --paper: #f4f1ea;
  --muted: #6b6b6b;
  --accent: #ff4d00;
  --line: rgba(17, 17, 17, 0.12);
  --font: "Inter", "Helvetica Neue", Helvetica, Arial, sans-serif;
  --gutter: clamp(1rem, 4vw, 3rem);
  --ease: cubic-bezier(0.22, 1, 0.36, 1);
}

*, *::before, *::after { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body {
  margin: 0;
  font-family: var(--font);
  color: var(--ink);
  background: var(--paper);
  line-height: 1.5;
  -webkit-font-smoothing: antialiased;
}
img, video, iframe { display: block; max-width: 100%; }
a { color: inherit; }
.sr-only {
  position: absolute; width: 1px; height: 1px; overflow: hidden;
  clip: rect(0 0 0 0); white-space: nowrap;
}

/* ============ Header ============ */
.site-header {
  position: sticky; top: 0; z-index: 10;
  display: flex; align-items: center; gap: 2rem;
  padding: 1rem var(--gutter);
  background: var(--paper);
  border-bottom: 1px solid var(--line);
}
.wordmark { color: var(--ink); }
.site-nav { display: flex; gap: 1.5rem; margin-left: auto; }
.site-nav a { text-decoration: none; color: var(--muted); }
.site-nav a.active, .site-nav a:hover { color: var(--ink); }
.navigator { background: none; border: 0; padding: 0; cursor: pointer; color: var(--ink); }
.navigator-icon { transition: transform 0.1s linear; }

/* ============ Type ============ */
h1 { font-size: clamp(2.5rem, 8vw, 7rem); line-height: 0.95; letter-spacing: -0.03em; margin: 0; }
h2 { font-size: clamp(1.5rem, 3vw, 2.5rem); letter-spacing: -0.02em; }
.eyebrow { text-transform: uppercase; letter-spacing: 0.12em; font-size: 0.75rem; color: var(--muted); }
.lede { font-size: 1.25rem; max-width: 40ch; }
section, .case-hero, .service-hero { padding: 4rem var(--gutter); }

/* ============ Home ============ */
.hero { min-height: 90vh; display: flex; flex-direction: column; justify-content: flex-end; position: relative; }
.hero-line { display: block; }
.scroll-hint { position: absolute; bottom: 2rem; right: var(--gutter); font-size: 0.75rem; text-transform: uppercase; letter-spacing: 0.2em; }
.brands { overflow: hidden; border-block: 1px solid var(--line); padding-inline: 0; }
.marquee { display: flex; gap: 4rem; width: max-content; animation: marquee 30s linear infinite; }
.marquee:hover { animation-play-state: paused; }
.marquee-item { font-size: 1.5rem; font-weight: 600; white-space: nowrap; }
.brand img { height: 2rem; width: auto; }
@keyframes marquee { from { transform: translateX(0); } to { transform: translateX(-50%); } }
.section-head { display: flex; justify-content: space-between; align-items: baseline; }
.testimonials { display: grid; gap: 2rem; grid-template-columns: repeat(auto-fit, minmax(18rem, 1fr)); }
.testimonial blockquote { margin: 0 0 1rem; font-size: 1.25rem; }

/* ============ Reveal ============ */
.reveal { font-size: clamp(1.5rem, 3.5vw, 3rem); line-height: 1.2; }
.reveal-line { display: block; }
.reveal-fill {
  background: linear-gradient(to right, var(--ink) 50%, rgba(17, 17, 17, 0.15) 50%);
  background-size: 200% 100%;
  background-position: calc(100% - var(--progress, 1) * 100%) 0;
  -webkit-background-clip: text; background-clip: text; color: transparent;
}
.reveal p.sr-only { margin: 0; }

/* ============ Cards and grids ============ */
.grid { display: grid; gap: 2rem; }
.grid-2 { grid-template-columns: repeat(2, 1fr); }
.grid-3 { grid-template-columns: repeat(3, 1fr); }
.project-card { text-decoration: none; display: block; }
.project-thumb { margin: 0; aspect-ratio: 4 / 3; background: var(--line); overflow: hidden; }
.project-thumb img { width: 100%; height: 100%; object-fit: cover; transition: transform 0.6s var(--ease); }
.project-card:hover .project-thumb img { transform: scale(1.04); }
.meta, .tags { color: var(--muted); margin: 0.25rem 0; }
.lead .project-thumb { aspect-ratio: 16 / 9; }

/* ============ Agency ============ */
.agency-bottom { color: var(--muted); }
.stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(10rem, 1fr)); gap: 2rem; }
.stat-number { display: block; font-size: clamp(2.5rem, 6vw, 5rem); font-weight: 700; }
.stat-label { color: var(--muted); }
.capabilities ol { list-style: none; padding: 0; margin: 0; }
.capability { border-top: 1px solid var(--line); padding: 2rem 0; opacity: 0.35; transition: opacity 0.4s var(--ease); }
.capability.is-active { opacity: 1; }
.capability a { display: flex; gap: 1rem; align-items: baseline; text-decoration: none; }
.capability h3 { margin: 0; font-size: clamp(1.5rem, 4vw, 3.5rem); }
.index { font-variant-numeric: tabular-nums; color: var(--muted); }
.philosophy { font-size: clamp(1.5rem, 4vw, 3rem); margin: 0; padding: 6rem var(--gutter); }
.philosophy cite { display: block; font-size: 1rem; font-style: normal; color: var(--muted); margin-top: 1rem; }

/* ============ Carousel ============ */
.carousel { position: relative; }
.carousel-viewport { overflow: hidden; }
.carousel-track { display: flex; transition: transform 0.7s var(--ease); }
.carousel-track.is-snapping { transition: none; }
.carousel-slide { flex: 0 0 100%; font-size: clamp(2rem, 6vw, 5rem); font-weight: 700; padding: 2rem 0; }
.carousel-prev, .carousel-next { background: none; border: 1px solid var(--line); border-radius: 50%; width: 3rem; height: 3rem; cursor: pointer; }
.carousel-dots { display: flex; gap: 0.5rem; margin-top: 1rem; }
.carousel-dot { width: 0.5rem; height: 0.5rem; border-radius: 50%; border: 0; background: var(--line); cursor: pointer; padding: 0; }
.carousel-dot.is-active { background: var(--ink); }
.carousel-progress { height: 2px; background: var(--line); margin-top: 1rem; }
.carousel-progress-bar { display: block; height: 100%; width: calc(var(--progress, 0) * 100%); background: var(--accent); }

/* ============ Case study ============ */
.case-meta { display: grid; grid-template-columns: repeat(4, 1fr); gap: 1rem; }
.case-meta dt { color: var(--muted); font-size: 0.75rem; text-transform: uppercase; }
.case-meta dd { margin: 0; }
.case-hero-media { width: 100%; margin-top: 2rem; }
.block figure { margin: 0; }
.block figcaption { color: var(--muted); font-size: 0.875rem; margin-top: 0.5rem; }
.full-bleed img { width: 100%; }
.gallery { display: grid; gap: 1rem; grid-template-columns: repeat(2, 1fr); }
.gallery.cols-2 { grid-template-columns: repeat(2, 1fr); }
.span-2 { grid-column: span 2; }
.prose { max-width: 65ch; }
.prose pre { overflow-x: auto; padding: 1rem; }
.embed { position: relative; aspect-ratio: 16 / 9; }
.embed iframe { position: absolute; inset: 0; width: 100%; height: 100%; border: 0; }
.video { width: 100%; }
.pull-quote { font-size: clamp(1.5rem, 3vw, 2.5rem); margin: 0; }
.pull-quote cite { display: block; font-size: 1rem; font-style: normal; color: var(--muted); }
.before-after { display: grid; grid-template-columns: 1fr 1fr; gap: 1rem; }
.palette { list-style: none; padding: 0; display: grid; grid-template-columns: repeat(auto-fit, minmax(8rem, 1fr)); gap: 1rem; }
.swatch { display: block; aspect-ratio: 1; border-radius: 4px; border: 1px solid var(--line); }
.fonts { display: grid; gap: 2rem; grid-template-columns: repeat(auto-fit, minmax(16rem, 1fr)); }
.font-sample { font-size: 2.5rem; margin: 0; }
.font-usage { color: var(--muted); }
.h-8 { height: 2rem; }
.h-16 { height: 4rem; }
.h-32 { height: 8rem; }
.h-48 { height: 12rem; }
.case-results { background: var(--ink); color: var(--paper); }
.case-results .reveal-fill { background-image: linear-gradient(to right, var(--paper) 50%, rgba(244, 241, 234, 0.2) 50%); }
.next-project { display: block; padding: 6rem var(--gutter); text-decoration: none; border-top: 1px solid var(--line); }
.next-project strong { display: block; font-size: clamp(2rem, 6vw, 5rem); }

/* ============ Services ============ */
.service-hero { display: grid; grid-template-columns: 1fr auto; gap: 2rem; align-items: end; }
.illustration { color: var(--accent); }
.sub-services ol { list-style: none; padding: 0; }
.sub-services li { display: grid; grid-template-columns: 4rem 1fr 2fr; gap: 1rem; border-top: 1px solid var(--line); padding: 1.5rem 0; }
.service-nav { display: flex; justify-content: space-between; padding: 3rem var(--gutter); }

/* ============ Contact ============ */
.availability strong { color: var(--accent); }
.copy {
  position: relative; background: none; border: 0; padding: 0; cursor: pointer;
  font: inherit; font-size: clamp(1.5rem, 5vw, 4rem); color: inherit;
}
.copy-bubble {
  position: absolute; left: 50%; bottom: 100%; transform: translate(-50%, -0.5rem);
  background: var(--ink); color: var(--paper); font-size: 0.75rem; padding: 0.25rem 0.5rem;
  border-radius: 999px; white-space: nowrap; opacity: 0; transition: opacity 0.3s var(--ease);
}
.copy:hover .copy-bubble, .copy.is-confirmed .copy-bubble { opacity: 1; }
.faq details { border-top: 1px solid var(--line); padding: 1.25rem 0; }
.faq summary { cursor: pointer; font-size: 1.25rem; font-weight: 600; }
address { font-style: normal; white-space: pre-line; }

/* ============ Footer ============ */
.site-footer {
  display: grid; gap: 2rem; grid-template-columns: 2fr 2fr 1fr;
  padding: 4rem var(--gutter); background: var(--ink); color: var(--paper);
}
.site-footer .copy { font-size: 1.5rem; }
.footer-logo { height: 2rem; width: auto; }
.footer-social { list-style: none; padding: 0; margin: 0; }
.footer-legal { grid-column: 1 / -1; color: var(--muted); font-size: 0.875rem; }
.not-found { min-height: 60vh; }
.button { display: inline-block; padding: 0.75rem 1.5rem; border: 1px solid var(--ink); border-radius: 999px; text-decoration: none; }

/* ============ Mobile ============ */
@media (max-width: 768px) {
  .grid-2, .grid-3, .before-after, .case-meta, .site-footer { grid-template-columns: 1fr; }
  .gallery, .gallery.cols-2 { grid-template-columns: repeat(2, 1fr); }
  .site-nav { gap: 1rem; }
  .service-hero { grid-template-columns: 1fr; }
  .sub-services li { grid-template-columns: 3rem 1fr; }
}
@media (min-width: 769px) {
  .gallery.cols-3 { grid-template-columns: repeat(3, 1fr); }
  .gallery.cols-4 { grid-template-columns: repeat(4, 1fr); }
  .md\:h-64 { height: 16rem; }
}
@media (prefers-reduced-motion: reduce) {
  .marquee { animation: none; }
  .carousel-track, .navigator-icon { transition: none; }
}
`

// jsContent boots the widget runtime and, in development, the reload
// client. Pages work without it.
const jsContent = `(function() {
  var body = document.body;

  // ============ Widgets ============
  if (body.dataset.wasm === 'true' && window.Go && WebAssembly.instantiateStreaming) {
    var go = new Go();
    WebAssembly.instantiateStreaming(fetch('/assets/widgets.wasm'), go.importObject)
      .then(function(result) { go.run(result.instance); })
      .catch(function(err) { console.warn('widgets unavailable:', err); });
  }

  // ============ Live reload ============
  if (body.dataset.liveReload === 'true') {
    var connect = function() {
      var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
      var ws = new WebSocket(proto + '//' + location.host + '/_live');
      ws.onmessage = function(e) {
        if (e.data === 'reload') location.reload();
      };
      ws.onclose = function() { setTimeout(connect, 1000); };
    };
    connect();
  }
})();
`
